package speech

// Language is a translation target with its speech voice tag.
type Language struct {
	Code  string // backend translation code, e.g. "es"
	Name  string
	Voice string // BCP-47 tag for the speech engine
}

// DefaultVoice is used for unknown language codes.
const DefaultVoice = "en-US"

// Languages lists the supported languages in menu order.
var Languages = []Language{
	{"en", "English", "en-US"},
	{"es", "Spanish", "es-ES"},
	{"fr", "French", "fr-FR"},
	{"de", "German", "de-DE"},
	{"it", "Italian", "it-IT"},
	{"pt", "Portuguese", "pt-BR"},
	{"zh", "Chinese", "zh-CN"},
	{"ja", "Japanese", "ja-JP"},
	{"ko", "Korean", "ko-KR"},
	{"ar", "Arabic", "ar-SA"},
	{"hi", "Hindi", "hi-IN"},
	{"ru", "Russian", "ru-RU"},
}

// LookupLanguage finds a language by code.
func LookupLanguage(code string) (Language, bool) {
	for _, l := range Languages {
		if l.Code == code {
			return l, true
		}
	}
	return Language{}, false
}

// VoiceFor maps a language code to its voice tag, defaulting to en-US.
func VoiceFor(code string) string {
	if l, ok := LookupLanguage(code); ok {
		return l.Voice
	}
	return DefaultVoice
}

// ReadAloudText is what the blog reader speaks.
func ReadAloudText(title, content string) string {
	return title + ". " + content
}
