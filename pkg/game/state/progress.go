package state

// Progress is the narrative stage of the session. Stages are totally
// ordered; comparisons with < and > follow the story.
type Progress int

const (
	Start Progress = iota
	TalkToFigure
	GetFirstKey
	GetFirstData
	GetSecondKey
	GetSecondData
	GetFinalKey
	GetFinalData
)

var progressNames = []string{
	"Start",
	"TalkToFigure",
	"GetFirstKey",
	"GetFirstData",
	"GetSecondKey",
	"GetSecondData",
	"GetFinalKey",
	"GetFinalData",
}

// AllProgress returns every stage in story order.
func AllProgress() []Progress {
	out := make([]Progress, len(progressNames))
	for i := range progressNames {
		out[i] = Progress(i)
	}
	return out
}

// String returns the stage name, which is also its dialog folder name.
func (p Progress) String() string {
	if !p.IsValid() {
		return "Unknown"
	}
	return progressNames[p]
}

// IsValid reports whether p is a known stage.
func (p Progress) IsValid() bool {
	return p >= Start && p <= GetFinalData
}

// IsKeyStage reports whether the player currently holds a dive key.
func (p Progress) IsKeyStage() bool {
	return p == GetFirstKey || p == GetSecondKey || p == GetFinalKey
}

// Next returns the following stage, saturating at GetFinalData.
func (p Progress) Next() Progress {
	if p >= GetFinalData {
		return GetFinalData
	}
	return p + 1
}

// ParseProgress looks a stage up by name.
func ParseProgress(name string) (Progress, bool) {
	for i, n := range progressNames {
		if n == name {
			return Progress(i), true
		}
	}
	return Start, false
}
