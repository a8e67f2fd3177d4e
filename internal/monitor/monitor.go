// Package monitor produces diagnostic artifacts for a vectorize run:
// gonum/plot previews of the traced curves and a go-echarts HTML
// report. Artifacts are tagged with a run id so repeated runs against
// the same image never clobber each other.
package monitor

import (
	"fmt"

	"github.com/google/uuid"
)

// RunID identifies one vectorize run in artifact names and logs.
func RunID() string {
	return fmt.Sprintf("run_%s", uuid.NewString())
}
