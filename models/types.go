package models

// Vote choices
const (
	ChoiceYes    = "yes"
	ChoiceNo     = "no"
	ChoiceUnsure = "unsure"
)

// DefaultCategory tags proposals submitted without one
const DefaultCategory = "General"

// Ad-gated action kinds
const (
	ActionVote     = "vote"
	ActionProposal = "proposal"
)

// ValidChoice reports whether c is one of the three ballot choices
func ValidChoice(c string) bool {
	switch c {
	case ChoiceYes, ChoiceNo, ChoiceUnsure:
		return true
	}
	return false
}

// Request types

type SendCodeRequest struct {
	Phone string `json:"phone"`
}

type CompleteVerificationRequest struct {
	Code string `json:"code"`
}

type VoteRequest struct {
	Choice string `json:"choice"`
}

type ProposalRequest struct {
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	Category string `json:"category"`
}

// Response types

type CreateSessionResponse struct {
	SessionToken string `json:"session_token"`
}

type SendCodeResponse struct {
	Sent     bool   `json:"sent"`
	DemoMode bool   `json:"demo_mode"`
	Message  string `json:"message"`
}

type VerificationStatus struct {
	Phone     string `json:"phone,omitempty"` // masked
	PhoneOK   bool   `json:"phone_ok"`
	CodeSent  bool   `json:"code_sent"`
	IDScanned bool   `json:"id_scanned"`
	Verified  bool   `json:"verified"`
}

// AdTicket is returned for every gated action. The action runs when the
// client closes the ad.
type AdTicket struct {
	ID      string `json:"ad_id"`
	Action  string `json:"action"`
	Seconds int    `json:"seconds"`
	Button  string `json:"button"` // "Skip" while counting down, then "Close"
}

type CloseAdResponse struct {
	Action string `json:"action"`
	Issue  *Issue `json:"issue,omitempty"`
}

type TotalsResponse struct {
	Counts
	Display DisplayTotals `json:"display"`
}

// DisplayTotals holds thousands-separated strings, e.g. "1,843"
type DisplayTotals struct {
	Yes    string `json:"yes"`
	No     string `json:"no"`
	Unsure string `json:"unsure"`
}

// Domain types

type Counts struct {
	Yes    int64 `json:"yes" yaml:"yes"`
	No     int64 `json:"no" yaml:"no"`
	Unsure int64 `json:"unsure" yaml:"unsure"`
}

// Add returns the per-counter sum of c and o
func (c Counts) Add(o Counts) Counts {
	return Counts{Yes: c.Yes + o.Yes, No: c.No + o.No, Unsure: c.Unsure + o.Unsure}
}

type Issue struct {
	ID     string   `json:"id" yaml:"id"`
	Title  string   `json:"title" yaml:"title"`
	Detail string   `json:"detail" yaml:"detail"`
	Tags   []string `json:"tags" yaml:"tags"`
	Stats  Counts   `json:"stats" yaml:"stats"`
}

type Proposal struct {
	Title    string
	Summary  string
	Category string
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
