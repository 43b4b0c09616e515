package lint

// ReportStatus is the tri-state outcome of one check within an analysis.
type ReportStatus string

const (
	StatusDisabled ReportStatus = "disabled"
	StatusClean    ReportStatus = "clean"
	StatusDirty    ReportStatus = "dirty"
)

// DisabledCount is the sentinel count carried by a disabled report. It is
// deliberately not zero so a skipped check cannot read as a clean one.
const DisabledCount = -1

// Report pairs a check with its flagged elements for one analysis run.
type Report struct {
	Check  Check        `json:"check"`
	Elems  BadElements  `json:"elements"`
	Count  int          `json:"count"`
	Status ReportStatus `json:"status"`
}

// Analysis is the result of one analyzer pass: one report per registered
// check, in registry order, plus the aggregate over enabled reports.
// Immutable once produced.
type Analysis struct {
	Reports       []Report `json:"reports"`
	TotalProblems int      `json:"total_problems"`
}

// Clean reports whether the run found zero problems among enabled checks.
func (a Analysis) Clean() bool {
	return a.TotalProblems == 0
}

// TopologyCounts is a cheap fingerprint of a mesh used to skip redundant
// full analyses. Two fingerprints are equal iff all three counts match and
// they reference the same underlying mesh data.
type TopologyCounts struct {
	DataID string `json:"data_id"`
	Verts  int    `json:"verts"`
	Edges  int    `json:"edges"`
	Faces  int    `json:"faces"`
}

func (t TopologyCounts) Equal(o TopologyCounts) bool {
	return t == o
}

// Analyzer runs the registered checks against mesh snapshots.
type Analyzer struct {
	reg *Registry
}

func NewAnalyzer(reg *Registry) *Analyzer {
	return &Analyzer{reg: reg}
}

func (a *Analyzer) Registry() *Registry {
	return a.reg
}

// Analyze runs every check in registry order. Checks whose symbol is absent
// from enabled (or mapped to false) are skipped and reported with the
// disabled sentinel. An empty mesh is a valid input and yields empty
// flagged sets, not an error.
func (a *Analyzer) Analyze(m Mesh, enabled map[string]bool) Analysis {
	analysis := Analysis{Reports: make([]Report, 0, len(a.reg.Checks()))}
	for _, c := range a.reg.Checks() {
		if !enabled[c.Symbol] {
			analysis.Reports = append(analysis.Reports, Report{
				Check:  c,
				Elems:  BadElements{},
				Count:  DisabledCount,
				Status: StatusDisabled,
			})
			continue
		}
		elems := c.Classify(m)
		if elems == nil {
			elems = BadElements{}
		}
		count := elems.Count()
		status := StatusClean
		if count > 0 {
			status = StatusDirty
		}
		analysis.Reports = append(analysis.Reports, Report{
			Check:  c,
			Elems:  elems,
			Count:  count,
			Status: status,
		})
		analysis.TotalProblems += count
	}
	return analysis
}

// NoneAnalysis builds the implicit baseline used when no prior run exists:
// every check present, every flagged set empty, regardless of enabled state.
func (a *Analyzer) NoneAnalysis() Analysis {
	analysis := Analysis{Reports: make([]Report, 0, len(a.reg.Checks()))}
	for _, c := range a.reg.Checks() {
		analysis.Reports = append(analysis.Reports, Report{
			Check:  c,
			Elems:  BadElements{},
			Count:  DisabledCount,
			Status: StatusDisabled,
		})
	}
	return analysis
}

// Snapshot captures the topology fingerprint of a mesh.
func (a *Analyzer) Snapshot(m Mesh) TopologyCounts {
	return TopologyCounts{
		DataID: m.DataID(),
		Verts:  m.VertCount(),
		Edges:  m.EdgeCount(),
		Faces:  m.FaceCount(),
	}
}
