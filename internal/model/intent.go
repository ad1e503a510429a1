package model

// Intent names what the caller wants done with a target
type Intent string

const (
	// IntentBrowse opens a URI in the user's browser
	IntentBrowse Intent = "browse"

	// IntentOpen opens a file with its default handler
	IntentOpen Intent = "open"

	// IntentEditText opens a file in a text editor
	IntentEditText Intent = "edit-text"

	// IntentEditImage opens a file in an image editor
	IntentEditImage Intent = "edit-image"

	// IntentEditAudio opens a file in an audio editor
	IntentEditAudio Intent = "edit-audio"
)

// String returns the string representation of Intent
func (i Intent) String() string {
	return string(i)
}

// EditorKind returns the media kind of an edit intent.
// The second result is false for browse and open.
func (i Intent) EditorKind() (EditorKind, bool) {
	switch i {
	case IntentEditText:
		return EditorText, true
	case IntentEditImage:
		return EditorImage, true
	case IntentEditAudio:
		return EditorAudio, true
	default:
		return "", false
	}
}

// EditorKind is the media kind a custom editor command is configured for
type EditorKind string

const (
	EditorText  EditorKind = "text"
	EditorImage EditorKind = "image"
	EditorAudio EditorKind = "audio"
)

// EditorKinds returns all editor kinds in display order
func EditorKinds() []EditorKind {
	return []EditorKind{EditorText, EditorImage, EditorAudio}
}

// ParseEditorKind maps a user supplied name to an EditorKind
func ParseEditorKind(s string) (EditorKind, bool) {
	for _, kind := range EditorKinds() {
		if string(kind) == s {
			return kind, true
		}
	}
	return "", false
}

// Intent returns the edit intent for this kind
func (k EditorKind) Intent() Intent {
	switch k {
	case EditorImage:
		return IntentEditImage
	case EditorAudio:
		return IntentEditAudio
	default:
		return IntentEditText
	}
}

// Action is a capability of the platform desktop integration
type Action string

const (
	ActionBrowse Action = "BROWSE"
	ActionOpen   Action = "OPEN"
	ActionEdit   Action = "EDIT"
)
