// Package content holds the site's static copy, feature list, sidebar tree
// and documentation pages. Nothing here changes after load.
package content

// Translator resolves a key to text for one locale, returning fallback when
// the locale has no value.
type Translator interface {
	T(key, fallback string) string
}

// Text is a piece of UI copy identified by Key. Default is the literal shown
// when no locale table supplies the key.
type Text struct {
	Key     string
	Default string
}

func T(key, def string) Text {
	return Text{Key: key, Default: def}
}

// In resolves the text through tr.
func (t Text) In(tr Translator) string {
	if tr == nil {
		return t.Default
	}
	return tr.T(t.Key, t.Default)
}
