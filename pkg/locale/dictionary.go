package locale

import (
	"errors"
	"fmt"
	"sort"
)

// Key names a translatable string.
type Key string

const (
	KeyTitle       Key = "title"
	KeyPlaceholder Key = "placeholder"
	KeyAddButton   Key = "add_button"
	KeyShowButton  Key = "show_button"
	KeyTask1       Key = "task1"
	KeyTask2       Key = "task2"
	KeyTask3       Key = "task3"
	KeyTask4       Key = "task4"
)

// StaticKeys label the fixed page chrome.
var StaticKeys = []Key{KeyTitle, KeyPlaceholder, KeyAddButton, KeyShowButton}

// SeedKeys label the rows present before the user adds anything.
var SeedKeys = []Key{KeyTask1, KeyTask2, KeyTask3, KeyTask4}

// RequiredKeys is every key each locale must supply.
func RequiredKeys() []Key {
	keys := make([]Key, 0, len(StaticKeys)+len(SeedKeys))
	keys = append(keys, StaticKeys...)
	return append(keys, SeedKeys...)
}

// ConfigError reports a dictionary that cannot serve a lookup.
type ConfigError struct {
	Locale Locale
	Key    Key
}

func (e *ConfigError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("locale: no dictionary for %q", e.Locale)
	}
	return fmt.Sprintf("locale: dictionary %q is missing key %q", e.Locale, e.Key)
}

// IsConfigError reports whether err is, or wraps, a *ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// Dictionary maps locale → key → text. Build one with NewDictionary so it is
// validated before use.
type Dictionary struct {
	entries map[Locale]map[Key]string
}

// NewDictionary validates that every locale in Order supplies every required
// key and returns the first gap as a *ConfigError.
func NewDictionary(entries map[Locale]map[Key]string) (*Dictionary, error) {
	for _, l := range Order {
		texts, ok := entries[l]
		if !ok {
			return nil, &ConfigError{Locale: l}
		}
		for _, k := range RequiredKeys() {
			if _, ok := texts[k]; !ok {
				return nil, &ConfigError{Locale: l, Key: k}
			}
		}
	}
	cp := make(map[Locale]map[Key]string, len(entries))
	for l, texts := range entries {
		inner := make(map[Key]string, len(texts))
		for k, v := range texts {
			inner[k] = v
		}
		cp[l] = inner
	}
	return &Dictionary{entries: cp}, nil
}

// Lookup returns the text for key in locale.
func (d *Dictionary) Lookup(l Locale, k Key) (string, error) {
	texts, ok := d.entries[l]
	if !ok {
		return "", &ConfigError{Locale: l}
	}
	v, ok := texts[k]
	if !ok {
		return "", &ConfigError{Locale: l, Key: k}
	}
	return v, nil
}

// Keys returns the keys defined for a locale, sorted.
func (d *Dictionary) Keys(l Locale) []Key {
	keys := make([]Key, 0, len(d.entries[l]))
	for k := range d.entries[l] {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Default returns the built-in English, Chinese and Arabic dictionary.
func Default() *Dictionary {
	d, err := NewDictionary(map[Locale]map[Key]string{
		English: {
			KeyTitle:       "What Should I Do Today? 🤔",
			KeyPlaceholder: "Enter a new task...",
			KeyAddButton:   "Add",
			KeyShowButton:  "+ New Task",
			KeyTask1:       "Create a style guide",
			KeyTask2:       "Send out prototypes",
			KeyTask3:       `Review "About" page legibility`,
			KeyTask4:       "Check color contrast",
		},
		Arabic: {
			KeyTitle:       "إيش حسوي اليوم؟ 🤔",
			KeyPlaceholder: "أدخل مهمة جديدة...",
			KeyAddButton:   "إضافة",
			KeyShowButton:  "+ مهمة جديدة",
			KeyTask1:       "إنشاء دليل الأسلوب",
			KeyTask2:       "إرسال النماذج الأولية",
			KeyTask3:       `قابلية قراءة صفحة "حول"`,
			KeyTask4:       "التحقق من تباين الألوان",
		},
		Chinese: {
			KeyTitle:       "我今天应该做什么？🤔",
			KeyPlaceholder: "输入新任务...",
			KeyAddButton:   "添加",
			KeyShowButton:  "+ 新任务",
			KeyTask1:       "创建风格指南",
			KeyTask2:       "发送原型",
			KeyTask3:       "检查“关于”页面的可读性",
			KeyTask4:       "检查颜色对比度",
		},
	})
	if err != nil {
		panic(err)
	}
	return d
}
