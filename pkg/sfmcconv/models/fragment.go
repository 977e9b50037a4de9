package models

// FragmentType is the value of the "type" column of a fragment sheet.
type FragmentType string

const (
	// FragmentPurpose is the block stacked first above the document.
	FragmentPurpose FragmentType = "purpose"
	// FragmentPartyIDCrypted is the encrypted party id block.
	FragmentPartyIDCrypted FragmentType = "partyIdCrypted"
	// FragmentPreference is the preference-center URL used for opt-in/opt-out links.
	// The misspelling matches the fragment workbooks in circulation.
	FragmentPreference FragmentType = "prefrence"
	// FragmentAppendText is the free text block stacked above the document.
	FragmentAppendText FragmentType = "append_text"
	// FragmentImage is the tracking image markup.
	FragmentImage FragmentType = "image"
	// FragmentStyle is the style block.
	FragmentStyle FragmentType = "style"
)

// GeneralModel is the model value of rows shared by every brand.
const GeneralModel = "generale"

// FragmentQuery selects a fragment row.
type FragmentQuery struct {
	// Sheet is the country sheet to search.
	Sheet string
	// Model is the brand, or GeneralModel.
	Model string
	// Type is the fragment type.
	Type FragmentType
	// Purpose filters on the purpose column when non-empty.
	Purpose string
}

// Fragment is the result of a fragment lookup. Found is false when no row matched.
type Fragment struct {
	Code  string
	Found bool
	// Row is the 1-based sheet row the code came from (0 when not found).
	Row int
}

// OrEmpty returns the code, or "" when the fragment was not found.
func (f Fragment) OrEmpty() string {
	if !f.Found {
		return ""
	}
	return f.Code
}
