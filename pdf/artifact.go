package pdf

import (
	"fmt"
	"time"
)

// Document kinds, used both in filenames and in GeneratedReport rows.
const (
	KindPresentation = "Management_Review_Presentation"
	KindMinutes      = "Management_Review_Minutes"
	KindAttendance   = "Management_Review_Attendance"
)

// Artifact is a fully serialized document ready for storage or download.
type Artifact struct {
	Kind     string
	Filename string
	Bytes    []byte
	Pages    int
}

// reportFilename builds the deterministic <Kind>_<ReviewID>_<yyyy-MM-dd>.pdf name.
func reportFilename(kind, reviewID string, now time.Time) string {
	return fmt.Sprintf("%s_%s_%s.pdf", kind, reviewID, now.Format("2006-01-02"))
}
