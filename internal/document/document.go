// Package document assembles the final technical digest from the analysis,
// the extracted frames and the optional video metadata.
package document

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"unicode"

	"github.com/nguyentantai21042004/video-digest/internal/analyzer"
	"github.com/nguyentantai21042004/video-digest/internal/artifact"
	"github.com/nguyentantai21042004/video-digest/internal/frames"
	"github.com/nguyentantai21042004/video-digest/internal/timestamp"
)

var tipoEmoji = map[string]string{
	analyzer.TipoTelaSoftware:   "💻",
	analyzer.TipoConfiguracao:   "⚙️",
	analyzer.TipoDashboard:      "📊",
	analyzer.TipoCodigo:         "👨‍💻",
	analyzer.TipoDiagrama:       "📈",
	analyzer.TipoExemploPratico: "🎯",
	analyzer.TipoBoasPraticas:   "✨",
}

// Assemble renders the digest markdown. Output is a pure function of its
// inputs: identical analysis, frames dir and metadata reproduce the same
// document byte for byte. Frame references are emitted by deterministic
// file name without checking the file exists.
func Assemble(analysis *analyzer.Analysis, framesDir string, meta *artifact.VideoMetadata) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", analysis.Titulo)

	writeMetadata(&b, meta)
	writeIndex(&b, analysis.Secoes)

	b.WriteString("## 📋 Visão Geral\n\n")
	fmt.Fprintf(&b, "%s\n\n", analysis.ResumoGeral)
	b.WriteString("---\n\n")

	b.WriteString("## 🔧 Conteúdo Técnico\n\n")
	for i, secao := range analysis.Secoes {
		writeSection(&b, i, secao, framesDir, meta)
	}

	b.WriteString("---\n\n")
	b.WriteString("## 💡 Resumo dos Conceitos Principais\n\n")
	fmt.Fprintf(&b, "%s\n", analysis.Conclusao)

	return b.String()
}

// writeMetadata emits the leading key-value block. Absent metadata or absent
// fields are simply omitted.
func writeMetadata(b *strings.Builder, meta *artifact.VideoMetadata) {
	if meta == nil {
		return
	}

	var lines []string
	if meta.Canal != "" {
		lines = append(lines, fmt.Sprintf("> **Canal:** %s", meta.Canal))
	}
	if meta.URL != "" {
		lines = append(lines, fmt.Sprintf("> **URL:** %s", meta.URL))
	}
	if meta.Duracao != "" {
		lines = append(lines, fmt.Sprintf("> **Duração:** %s", meta.Duracao))
	}
	if meta.DataProcessamento != "" {
		lines = append(lines, fmt.Sprintf("> **Processado em:** %s", meta.DataProcessamento))
	}

	if len(lines) > 0 {
		b.WriteString(strings.Join(lines, "\n"))
		b.WriteString("\n\n")
	}
}

// writeIndex emits the table of contents, one entry per section in analyzer
// order.
func writeIndex(b *strings.Builder, secoes []analyzer.Section) {
	if len(secoes) == 0 {
		return
	}

	b.WriteString("## Índice\n\n")
	for i, secao := range secoes {
		fmt.Fprintf(b, "%d. [%s](#%s)\n", i+1, secao.Titulo, Anchor(i+1, secao.Titulo))
	}
	b.WriteString("\n")
}

func writeSection(b *strings.Builder, i int, secao analyzer.Section, framesDir string, meta *artifact.VideoMetadata) {
	fmt.Fprintf(b, "### %d. %s\n\n", i+1, secao.Titulo)

	emoji, ok := tipoEmoji[secao.TipoConteudo]
	if !ok {
		emoji = "📌"
	}

	rangeText := fmt.Sprintf("%s - %s", timestamp.Clock(secao.TimestampInicio), timestamp.Clock(secao.TimestampFim))
	fmt.Fprintf(b, "%s **Tipo:** %s | **⏱️ Timestamp:** %s", emoji, tipoLabel(secao.TipoConteudo), rangeText)
	if link := deepLink(meta, secao.TimestampInicio); link != "" {
		fmt.Fprintf(b, " | [▶ Assistir](%s)", link)
	}
	b.WriteString("\n\n")

	fmt.Fprintf(b, "![Frame em %.1fs](%s/%s)\n\n", secao.TimestampFrame, framesDir, frames.FileName(secao.TimestampFrame))

	fmt.Fprintf(b, "%s\n\n", secao.Descricao)

	if secao.Citacao != "" {
		fmt.Fprintf(b, "> 💬 *%q*\n\n", secao.Citacao)
	}
}

// Anchor derives the TOC anchor from the 1-based section index and title.
// Two sections with the same title still get distinct anchors because the
// index leads.
func Anchor(index int, title string) string {
	return fmt.Sprintf("%d-%s", index, slugify(title))
}

// slugify lowercases, strips punctuation and collapses whitespace to
// hyphens.
func slugify(s string) string {
	s = strings.ToLower(s)

	var b strings.Builder
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r) || r == '-':
			b.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), "-")
}

// tipoLabel turns a content-type tag into a display label
// (exemplo_pratico -> Exemplo Pratico).
func tipoLabel(tipo string) string {
	words := strings.Split(tipo, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// deepLink appends the section start offset in whole seconds as the t query
// parameter of the source URL. Returns empty when no URL is available.
func deepLink(meta *artifact.VideoMetadata, startSec float64) string {
	if meta == nil || meta.URL == "" {
		return ""
	}

	u, err := url.Parse(meta.URL)
	if err != nil {
		return ""
	}

	if startSec < 0 {
		startSec = 0
	}
	q := u.Query()
	q.Set("t", strconv.Itoa(int(startSec)))
	u.RawQuery = q.Encode()

	return u.String()
}
