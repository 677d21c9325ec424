// Package framing states the problem before any data is touched: what is
// being predicted, from what, and what could go wrong. It also records the
// runtime snapshot that makes a run's numbers reproducible.
package framing

import (
	"fmt"
	"strings"
)

// Brief is the problem statement for the red-vs-white exercise.
type Brief struct {
	Title      string
	Objective  string
	Dataset    string
	Target     string
	Hypotheses []string
	Risks      []string
	Success    []string
}

// DefaultBrief returns the framing of the wine color classification study.
func DefaultBrief() Brief {
	return Brief{
		Title: "Red vs white: wine color from physicochemistry",
		Objective: "Frame a binary classification task: decide from eleven " +
			"physicochemical measurements whether a Vinho Verde wine is red or " +
			"white. This stage is exploratory only; it produces the evidence a " +
			"later modeling stage will build on.",
		Dataset: "UCI Machine Learning Repository, Wine Quality (Cortez et " +
			"al., 2009): winequality-red.csv (1599 rows) and " +
			"winequality-white.csv (4898 rows), semicolon separated, twelve " +
			"columns each.",
		Target: "type: red=1, white=0. The label is not a column in either " +
			"file; it is derived from which file a row came from.",
		Hypotheses: []string{
			"volatile acidity runs higher in reds",
			"total and free sulfur dioxide run higher in whites",
			"residual sugar runs higher in whites",
			"a small subset of attributes already separates the colors well",
		},
		Risks: []string{
			"classes are imbalanced roughly 1:3, so accuracy alone misleads",
			"both files contain exact duplicate rows that could leak across a split",
			"quality is ordinal and concentrated on scores 5-6",
			"attribute scales differ by orders of magnitude, so distance-based methods need scaling",
		},
		Success: []string{
			"class balance, descriptive statistics, and correlations documented",
			"at least two per-attribute comparisons of the classes visualized",
			"every number reproducible from a fixed seed and pinned data files",
			"no model fitted at this stage",
		},
	}
}

// Render writes the brief as a markdown document.
func (b Brief) Render() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", b.Title)
	fmt.Fprintf(&sb, "## Objective\n\n%s\n\n", b.Objective)
	fmt.Fprintf(&sb, "## Data\n\n%s\n\n", b.Dataset)
	fmt.Fprintf(&sb, "## Target\n\n%s\n\n", b.Target)
	writeList(&sb, "Hypotheses", b.Hypotheses)
	writeList(&sb, "Risks", b.Risks)
	writeList(&sb, "Done when", b.Success)
	return sb.String()
}

func writeList(sb *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(sb, "## %s\n\n", title)
	for _, it := range items {
		fmt.Fprintf(sb, "- %s\n", it)
	}
	sb.WriteString("\n")
}
