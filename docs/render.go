package docs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/titpetric/dbdocs/model"
)

const intro = `This document was automatically generated to provide an overview of the MySQL database schema used in this project.
It is optimized to support AI-assisted development by summarizing tables, columns, associated models,
fillable attributes, casts, hidden fields, and model relationships. Each section includes an example JSON payload
(retrieved or mocked) to give context for the structure of the data.
`

// NoRelations is rendered for models without declared relations
const NoRelations = "- _No relations found._"

// Render assembles the Markdown document from table reports
func Render(database string, reports []*TableReport) []byte {
	buf := bytes.NewBufferString(fmt.Sprintf("# Database Documentation: `%s`\n\n", database))
	buf.WriteString(intro)
	buf.WriteString("\n")

	for _, report := range reports {
		renderTable(buf, report)
	}
	return buf.Bytes()
}

func renderTable(buf *bytes.Buffer, report *TableReport) {
	table := report.Table

	tag := ""
	if table.IsDefault {
		tag = " *(Framework Default)*"
	}
	buf.WriteString(fmt.Sprintf("## Table: `%s`%s\n\n", table.Name, tag))

	if table.Comment != "" {
		buf.WriteString(table.Comment + "\n\n")
	}

	if report.Model != nil {
		renderModel(buf, report.Model)
	}

	buf.WriteString("| Column | Type | Nullable | Key | Default | Extra | Comment |\n")
	buf.WriteString("|--------|------|----------|-----|---------|-------|---------|\n")
	for _, column := range table.Columns {
		buf.WriteString(fmt.Sprintf("| `%s` | `%s` | `%s` | `%s` | `%s` | `%s` | %s |\n",
			cell(column.Name),
			cell(column.Type),
			cell(column.Nullable),
			cell(column.Key),
			cell(column.DefaultValue()),
			cell(column.Extra),
			cell(column.Comment),
		))
	}

	buf.WriteString("\n### Example JSON:\n\n")
	buf.WriteString("```json\n")
	buf.WriteString(report.Example)
	buf.WriteString("\n```\n\n")
}

func renderModel(buf *bytes.Buffer, descriptor *model.Descriptor) {
	buf.WriteString(fmt.Sprintf("**Associated Model:** `%s`\n\n", descriptor.Name))

	attribute := func(title string, value interface{}, empty bool) {
		if empty {
			return
		}
		encoded, err := json.Marshal(value)
		if err != nil {
			return
		}
		buf.WriteString(fmt.Sprintf("**%s:** `%s`\n\n", title, strings.Replace(string(encoded), "`", "\\`", -1)))
	}

	metadata := descriptor.Metadata
	attribute("Fillable", metadata.Fillable, len(metadata.Fillable) == 0)
	attribute("Casts", metadata.Casts, len(metadata.Casts) == 0)
	attribute("Hidden", metadata.Hidden, len(metadata.Hidden) == 0)

	buf.WriteString("**Relations:**\n")
	if len(descriptor.Relations) == 0 {
		buf.WriteString(NoRelations + "\n")
	}
	for _, relation := range descriptor.Relations {
		buf.WriteString(fmt.Sprintf("- `%s()` → `%s(%s)`\n", relation.Method, relation.Kind, relation.Related))
	}
	buf.WriteString("\n")
}

// cell escapes text for use inside a Markdown table cell
func cell(text string) string {
	text = strings.Replace(text, "|", "\\|", -1)
	text = strings.Replace(text, "\r\n", " ", -1)
	return strings.Replace(text, "\n", " ", -1)
}
