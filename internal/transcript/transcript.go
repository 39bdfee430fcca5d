// Package transcript holds the speech-recognition output and its renderings.
package transcript

import (
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/video-digest/internal/timestamp"
)

// Segment is a single recognized span of speech.
type Segment struct {
	Inicio float64 `json:"inicio"`
	Fim    float64 `json:"fim"`
	Texto  string  `json:"texto"`
}

// Transcript is the join point between transcription and analysis.
type Transcript struct {
	TextoCompleto string    `json:"texto_completo"`
	Segmentos     []Segment `json:"segmentos"`
}

// New normalizes raw recognizer segments into a Transcript. Segment text is
// whitespace-trimmed; order is preserved and empty segments are kept.
func New(fullText string, segments []Segment) *Transcript {
	normalized := make([]Segment, len(segments))
	for i, seg := range segments {
		normalized[i] = Segment{
			Inicio: seg.Inicio,
			Fim:    seg.Fim,
			Texto:  strings.TrimSpace(seg.Texto),
		}
	}

	return &Transcript{
		TextoCompleto: fullText,
		Segmentos:     normalized,
	}
}

// PlainText returns the full transcription text.
func (t *Transcript) PlainText() string {
	return t.TextoCompleto
}

// SRT renders the segments in subtitle format: sequence number, start/end
// timestamps, text, each entry separated by a blank line.
func (t *Transcript) SRT() string {
	var b strings.Builder

	for i, seg := range t.Segmentos {
		fmt.Fprintf(&b, "%d\n", i+1)
		fmt.Fprintf(&b, "%s --> %s\n", timestamp.Format(seg.Inicio), timestamp.Format(seg.Fim))
		fmt.Fprintf(&b, "%s\n\n", strings.TrimSpace(seg.Texto))
	}

	return b.String()
}
