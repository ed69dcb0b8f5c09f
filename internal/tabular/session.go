package tabular

import "errors"

// Stage is one step of the linear import flow.
type Stage string

const (
	StageSelectFile Stage = "select_file"
	StageMapHeaders Stage = "map_headers"
	StagePreview    Stage = "preview"
	StageUpload     Stage = "upload"
)

var stageOrder = []Stage{StageSelectFile, StageMapHeaders, StagePreview, StageUpload}

var ErrInvalidTransition = errors.New("invalid import stage transition")

// Session tracks one import run through its stages: SelectFile → MapHeaders
// → Preview → Upload. Only adjacent forward steps and explicit Back steps
// are allowed; re-selecting a file resets everything downstream.
type Session struct {
	stage   Stage
	table   *Table
	mapping Mapping
	fields  []Field

	valid  []Record
	errors []RowError
}

// NewSession starts at file selection with the schema the import targets.
func NewSession(fields []Field) *Session {
	return &Session{stage: StageSelectFile, fields: fields}
}

func (s *Session) Stage() Stage       { return s.stage }
func (s *Session) Table() *Table      { return s.table }
func (s *Session) Mapping() Mapping   { return s.mapping }
func (s *Session) Valid() []Record    { return s.valid }
func (s *Session) Errors() []RowError { return s.errors }

// SetFile accepts a parsed table. Allowed from any stage: picking a new file
// abandons the previous mapping and preview.
func (s *Session) SetFile(t *Table) {
	s.table = t
	s.mapping = AutoMap(s.fields, t.Headers)
	s.valid = nil
	s.errors = nil
	s.stage = StageMapHeaders
}

// OverrideMapping rebinds one field while on the mapping stage.
func (s *Session) OverrideMapping(fieldKey string, columnIdx int) error {
	if s.stage != StageMapHeaders {
		return ErrInvalidTransition
	}
	s.mapping.Override(fieldKey, columnIdx)
	return nil
}

// Next advances one stage. Entering preview runs validation over the whole
// batch; entering upload requires at least one valid row.
func (s *Session) Next() error {
	switch s.stage {
	case StageSelectFile:
		return ErrInvalidTransition // only SetFile leaves this stage
	case StageMapHeaders:
		s.valid, s.errors = BuildRecords(s.table, s.mapping, s.fields)
		s.stage = StagePreview
	case StagePreview:
		if len(s.valid) == 0 {
			return ErrNoRows
		}
		s.stage = StageUpload
	case StageUpload:
		return ErrInvalidTransition
	}
	return nil
}

// SessionState is the serializable form of a Session, used to park an
// in-progress import in external storage between requests.
type SessionState struct {
	Stage   Stage      `json:"stage"`
	Table   *Table     `json:"table,omitempty"`
	Mapping Mapping    `json:"mapping,omitempty"`
	Fields  []Field    `json:"fields"`
	Valid   []Record   `json:"valid,omitempty"`
	Errors  []RowError `json:"errors,omitempty"`
}

// State snapshots the session.
func (s *Session) State() SessionState {
	return SessionState{
		Stage:   s.stage,
		Table:   s.table,
		Mapping: s.mapping,
		Fields:  s.fields,
		Valid:   s.valid,
		Errors:  s.errors,
	}
}

// RestoreSession rebuilds a session from a snapshot.
func RestoreSession(st SessionState) *Session {
	return &Session{
		stage:   st.Stage,
		table:   st.Table,
		mapping: st.Mapping,
		fields:  st.Fields,
		valid:   st.Valid,
		errors:  st.Errors,
	}
}

// Back steps to the previous stage. Preview results are discarded so a
// remapping always revalidates.
func (s *Session) Back() error {
	for i, st := range stageOrder {
		if st == s.stage {
			if i == 0 {
				return ErrInvalidTransition
			}
			s.stage = stageOrder[i-1]
			if s.stage == StageMapHeaders {
				s.valid = nil
				s.errors = nil
			}
			return nil
		}
	}
	return ErrInvalidTransition
}
