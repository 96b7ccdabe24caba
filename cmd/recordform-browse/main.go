// Command recordform-browse opens a MySQL table in a terminal record form:
// one row at a time, ENUM/SET columns resolved to their option lists, edits
// written back into the in-memory recordset.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/go-sql-driver/mysql"

	recordform "github.com/goliatone/go-recordform"
	"github.com/goliatone/go-recordform/pkg/export"
	"github.com/goliatone/go-recordform/pkg/metadata"
	"github.com/goliatone/go-recordform/pkg/model"
	"github.com/goliatone/go-recordform/pkg/recordset"
	"github.com/goliatone/go-recordform/pkg/toolkit/term"
	"github.com/goliatone/go-recordform/pkg/uiconfig"
)

func main() {
	var (
		dsnFlag      = flag.String("dsn", "", "MySQL DSN, e.g. user:pass@tcp(localhost:3306)/appdb")
		tableFlag    = flag.String("table", "", "table to browse")
		limitFlag    = flag.Int("limit", 100, "maximum rows to load")
		readonlyFlag = flag.Bool("readonly", false, "disable editing")
		configFlag   = flag.String("config", "", "optional YAML file with per-column overrides")
		exportFlag   = flag.String("export", "", "optional HTML snapshot path for the current record on quit")
	)
	flag.Parse()

	if *dsnFlag == "" || *tableFlag == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := mysql.ParseDSN(*dsnFlag)
	if err != nil {
		log.Fatalf("parse dsn: %v", err)
	}

	db, err := metadata.Open(*dsnFlag)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()

	rs, err := loadTable(ctx, db, cfg.DBName, *tableFlag, *limitFlag)
	if err != nil {
		log.Fatalf("load table: %v", err)
	}

	options := []recordform.Option{
		recordform.WithResolver(metadata.NewSQLResolver(db, serverVersion(ctx, db))),
	}
	if *configFlag != "" {
		overrides, err := uiconfig.Load(*configFlag)
		if err != nil {
			log.Fatalf("load overrides: %v", err)
		}
		options = append(options, recordform.WithOverrides(overrides))
	}

	tk := term.New()
	view := recordform.New(tk, !*readonlyFlag, options...)

	handle := recordset.NewHandle(rs)
	defer handle.Release()

	if err := view.Bind(ctx, handle); err != nil {
		log.Fatalf("bind: %v", err)
	}

	if err := browse(ctx, tk, view); err != nil {
		log.Fatalf("browse: %v", err)
	}

	if *exportFlag != "" {
		if err := exportSnapshot(view, *exportFlag); err != nil {
			log.Fatalf("export: %v", err)
		}
		log.Printf("snapshot written to %s", *exportFlag)
	}
}

// browse paints the current record and prompts for the next action until the
// user quits or aborts.
func browse(ctx context.Context, tk *term.Toolkit, view *recordform.FormView) error {
	for {
		paint(tk, view)

		choice, err := pickAction(view)
		if err != nil {
			if err == term.ErrAborted {
				return nil
			}
			return err
		}

		switch choice {
		case "edit":
			if err := editField(ctx, tk, view); err != nil && err != term.ErrAborted {
				return err
			}
		case "quit":
			return nil
		default:
			view.Navigate(commandByName(view, choice))
		}
	}
}

func paint(tk *term.Toolkit, view *recordform.FormView) {
	fmt.Println()
	for _, item := range view.Toolbar().Items() {
		if item.Kind == recordform.ItemPosition {
			fmt.Printf("-- record %s --\n", item.Text)
		}
	}
	for _, row := range view.Rows() {
		tk.Render(row.Label.Text(), row.Control)
	}
}

func pickAction(view *recordform.FormView) (string, error) {
	options := []string{}
	for _, item := range view.Toolbar().Items() {
		if item.Kind == recordform.ItemAction && item.Enabled() {
			options = append(options, item.Name)
		}
	}
	if view.Editable() {
		options = append(options, "edit")
	}
	options = append(options, "quit")

	var choice string
	prompt := &survey.Select{Message: "Action:", Options: options}
	if err := survey.AskOne(prompt, &choice); err != nil {
		return "", term.ErrAborted
	}
	return choice, nil
}

func editField(ctx context.Context, tk *term.Toolkit, view *recordform.FormView) error {
	rows := view.Rows()
	labels := make([]string, 0, len(rows))
	for _, row := range rows {
		labels = append(labels, row.Label.Text())
	}

	var picked string
	prompt := &survey.Select{Message: "Field:", Options: labels}
	if err := survey.AskOne(prompt, &picked); err != nil {
		return term.ErrAborted
	}
	for _, row := range rows {
		if row.Label.Text() == picked {
			return tk.Edit(ctx, picked, row.Control)
		}
	}
	return nil
}

func commandByName(view *recordform.FormView, name string) recordform.Command {
	for _, item := range view.Toolbar().Items() {
		if item.Name == name {
			return item.Command
		}
	}
	return recordform.CommandFirst
}

func exportSnapshot(view *recordform.FormView, path string) error {
	exporter, err := export.New()
	if err != nil {
		return err
	}
	html, err := view.ExportHTML(exporter)
	if err != nil {
		return err
	}
	return os.WriteFile(path, html, 0o644)
}

func serverVersion(ctx context.Context, db *sql.DB) metadata.ServerVersion {
	var raw string
	if err := db.QueryRowContext(ctx, "SELECT VERSION()").Scan(&raw); err != nil {
		log.Printf("server version unavailable: %v", err)
		return metadata.ServerVersion{}
	}
	return metadata.ParseServerVersion(raw)
}

// loadTable reads up to limit rows into an in-memory recordset, classifying
// each column from the driver's reported database type.
func loadTable(ctx context.Context, db *sql.DB, schema, table string, limit int) (*recordset.Memory, error) {
	query := fmt.Sprintf("SELECT * FROM `%s` LIMIT %d", table, limit)
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", table, err)
	}
	defer rows.Close()

	columnTypes, err := rows.ColumnTypes()
	if err != nil {
		return nil, err
	}
	columns := make([]model.Column, 0, len(columnTypes))
	for _, ct := range columnTypes {
		columns = append(columns, classifyColumn(ct, schema, table))
	}

	var records [][]recordset.Value
	for rows.Next() {
		scanned := make([]sql.NullString, len(columns))
		dest := make([]any, len(columns))
		for i := range scanned {
			dest[i] = &scanned[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}

		record := make([]recordset.Value, len(columns))
		for i, cell := range scanned {
			if cell.Valid {
				record[i] = recordset.StringValue(cell.String)
			} else {
				record[i] = recordset.NullValue()
			}
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return recordset.NewMemory(columns, records), nil
}

func classifyColumn(ct *sql.ColumnType, schema, table string) model.Column {
	col := model.Column{
		Name:   ct.Name(),
		Schema: schema,
		Table:  table,
	}
	if length, ok := ct.Length(); ok {
		col.DisplayWidth = int(length)
	}
	if nullable, ok := ct.Nullable(); ok {
		col.Nullable = nullable
	}

	switch strings.ToUpper(ct.DatabaseTypeName()) {
	case "TEXT", "TINYTEXT", "MEDIUMTEXT", "LONGTEXT", "JSON":
		col.Type = model.TypeLongText
	case "BLOB", "TINYBLOB", "MEDIUMBLOB", "LONGBLOB", "BINARY", "VARBINARY", "GEOMETRY":
		col.Type = model.TypeBinary
	case "ENUM":
		col.Type = model.TypeSingleChoice
	case "SET":
		col.Type = model.TypeMultiChoice
	default:
		col.Type = model.TypeShortText
	}
	return col
}
