package domain

// Language is a supported interface language code.
type Language string

const (
	LangEN Language = "en"
	LangFA Language = "fa"
)

// DefaultLanguage is used until a user explicitly picks another one.
const DefaultLanguage = LangEN

// Valid reports whether l is one of the supported language codes.
func (l Language) Valid() bool {
	return l == LangEN || l == LangFA
}

// DisplayName returns the human-readable name shown on language buttons.
func (l Language) DisplayName() string {
	switch l {
	case LangFA:
		return "فارسی"
	default:
		return "English"
	}
}

// EditSession records the file a user submitted for metadata editing.
type EditSession struct {
	FilePath string
	FileName string
}

// UserSession is the per-user conversational state. A user has at most one
// in-flight edit session; a new file overwrites a pending one.
type UserSession struct {
	Language Language
	Edit     *EditSession
}
