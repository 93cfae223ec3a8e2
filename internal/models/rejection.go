package models

// RejectionKind discriminates the reasons a submission can be refused. The
// same vocabulary is used for pipeline rejections and for persistence-time
// conflicts, so callers render a uniform error response.
type RejectionKind string

const (
	RejectionMissingRequiredField RejectionKind = "missing_required_field"
	RejectionInvalidFormat        RejectionKind = "invalid_format"
	RejectionAttachmentRejected   RejectionKind = "attachment_rejected"
	RejectionDuplicateKey         RejectionKind = "duplicate_key"
)

// Rejection is a single structured reason a submission failed
type Rejection struct {
	Kind   RejectionKind `json:"kind"`
	Field  string        `json:"field"`
	Reason string        `json:"reason,omitempty"`
}

// RejectionList accumulates every rejection found in one validation pass,
// so the submitter gets a complete error report instead of the first failure.
type RejectionList struct {
	IsValid    bool        `json:"is_valid"`
	Rejections []Rejection `json:"rejections,omitempty"`
}

// NewRejectionList creates an empty, valid rejection list
func NewRejectionList() *RejectionList {
	return &RejectionList{
		IsValid:    true,
		Rejections: []Rejection{},
	}
}

// AddMissingField records a mandatory field that is empty after normalization
func (rl *RejectionList) AddMissingField(field string) {
	rl.add(Rejection{Kind: RejectionMissingRequiredField, Field: field, Reason: field + " is required"})
}

// AddInvalidFormat records a field whose value fails a structural check
func (rl *RejectionList) AddInvalidFormat(field, reason string) {
	rl.add(Rejection{Kind: RejectionInvalidFormat, Field: field, Reason: reason})
}

// AddAttachmentRejected records an attachment refused by extension or size
func (rl *RejectionList) AddAttachmentRejected(field, reason string) {
	rl.add(Rejection{Kind: RejectionAttachmentRejected, Field: field, Reason: reason})
}

// AddDuplicateKey records a persistence-time uniqueness conflict
func (rl *RejectionList) AddDuplicateKey(field string) {
	rl.add(Rejection{Kind: RejectionDuplicateKey, Field: field, Reason: field + " already registered"})
}

func (rl *RejectionList) add(r Rejection) {
	rl.IsValid = false
	rl.Rejections = append(rl.Rejections, r)
}

// Len returns the number of accumulated rejections
func (rl *RejectionList) Len() int {
	return len(rl.Rejections)
}

// HasKind reports whether any rejection of the given kind was recorded
func (rl *RejectionList) HasKind(kind RejectionKind) bool {
	for _, r := range rl.Rejections {
		if r.Kind == kind {
			return true
		}
	}
	return false
}

// DuplicateCPFRejection builds the rejection list used when the store refuses
// an insert because the CPF is already registered.
func DuplicateCPFRejection() *RejectionList {
	rl := NewRejectionList()
	rl.AddDuplicateKey("cpf")
	return rl
}
