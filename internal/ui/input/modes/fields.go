package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"mirrsearch/internal/ui/input/types"
)

type QueryMode struct {
	TextInputMode
}

func NewQueryMode(ti *textinput.Model) *QueryMode {
	return &QueryMode{
		TextInputMode: NewTextInputMode(types.ModeQuery, "query", "Search: ", "Search query", ti),
	}
}

type AgencySearchMode struct {
	TextInputMode
}

func NewAgencySearchMode(ti *textinput.Model) *AgencySearchMode {
	return &AgencySearchMode{
		TextInputMode: NewTextInputMode(types.ModeAgencySearch, "agency-search", "Agency: ", "Search agencies…", ti),
	}
}

type CfrSearchMode struct {
	TextInputMode
}

func NewCfrSearchMode(ti *textinput.Model) *CfrSearchMode {
	return &CfrSearchMode{
		TextInputMode: NewTextInputMode(types.ModeCfrSearch, "cfr-search", "CFR part: ", "Search CFR part number…", ti),
	}
}

// YearMode edits one end of the date range. Years are free text, capped at four characters.
type YearMode struct {
	TextInputMode
}

func NewYearMode(mode types.Mode, ti *textinput.Model) *YearMode {
	name, prompt, placeholder := "year-from", "From: ", "From"
	if mode == types.ModeYearTo {
		name, prompt, placeholder = "year-to", "To: ", "To"
	}
	base := NewTextInputMode(mode, name, prompt, placeholder, ti)
	base.charLimit = 4
	return &YearMode{TextInputMode: base}
}
