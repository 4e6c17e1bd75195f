package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mattn/go-isatty"

	"github.com/goliatone/go-docfill/internal/docx"
	"github.com/goliatone/go-docfill/pkg/data"
	"github.com/goliatone/go-docfill/pkg/filler"
	"github.com/goliatone/go-docfill/pkg/render"
)

func main() {
	dataPath := flag.String("data", "", "YAML data file path or URL ('-' reads stdin)")
	templatePath := flag.String("template", "", "DOCX template path or URL")
	output := flag.String("output", "", "output file path")
	rendererName := flag.String("renderer", "", "renderer to use (default: docx)")
	strict := flag.Bool("strict", false, "fail when the template references keys absent from the data")
	force := flag.Bool("force", false, "overwrite the output file without asking")
	inspect := flag.Bool("inspect", false, "print the template's variables and exit")
	allowHTTP := flag.Bool("allow-http", false, "enable loading data/template from http(s) URLs")
	flag.Parse()

	ctx := context.Background()

	if *templatePath == "" {
		log.Fatal("a -template path is required")
	}

	var options []filler.Option
	if *allowHTTP {
		options = append(options, filler.WithLoaderOptions(data.WithHTTPFallback(0)))
	}
	if *strict {
		options = append(options, filler.WithMissingKeyPolicy(render.MissingKeyError))
	}

	gen := filler.New(options...)

	if *inspect {
		if err := inspectTemplate(ctx, gen, *templatePath); err != nil {
			log.Fatalf("Failed to inspect template: %v", err)
		}
		return
	}

	if *dataPath == "" {
		log.Fatal("a -data path is required")
	}
	if *output == "" {
		log.Fatal("an -output path is required")
	}

	if !*force && !confirmOverwrite(*output) {
		fmt.Println("Aborted.")
		os.Exit(1)
	}

	req := filler.Request{
		DataSource:     parseSource(*dataPath, "data"),
		TemplateSource: parseSource(*templatePath, "template"),
		Renderer:       *rendererName,
	}

	if err := gen.FillToFile(ctx, req, *output); err != nil {
		log.Fatalf("Failed to fill template: %v", err)
	}
	fmt.Printf("Document written to %s\n", *output)
}

func parseSource(raw, role string) data.Source {
	switch {
	case raw == "-":
		if role == "template" {
			log.Fatal("the template cannot be read from stdin")
		}
		return data.SourceFromReader("stdin", os.Stdin)
	case isURL(raw):
		return data.SourceFromURL(raw)
	default:
		return data.SourceFromFile(raw)
	}
}

func isURL(raw string) bool {
	return len(raw) > 7 && (raw[:7] == "http://" || (len(raw) > 8 && raw[:8] == "https://"))
}

// confirmOverwrite asks before replacing an existing output file, but only in
// interactive sessions; scripted runs keep the original overwrite behaviour.
func confirmOverwrite(path string) bool {
	if _, err := os.Stat(path); err != nil {
		return true
	}
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		return true
	}

	overwrite := false
	prompt := &survey.Confirm{
		Message: fmt.Sprintf("%s already exists. Overwrite?", path),
		Default: true,
	}
	if err := survey.AskOne(prompt, &overwrite); err != nil {
		return false
	}
	return overwrite
}

func inspectTemplate(ctx context.Context, gen *filler.Filler, templatePath string) error {
	loader := gen.Loader()
	doc, err := loader.Load(ctx, parseSource(templatePath, "template"))
	if err != nil {
		return err
	}

	reader, err := docx.OpenBytes(doc.Raw())
	if err != nil {
		return err
	}
	variables, err := reader.Variables()
	if err != nil {
		return err
	}

	if len(variables) == 0 {
		fmt.Println("Template references no variables.")
		return nil
	}
	for _, name := range variables {
		fmt.Println(name)
	}
	return nil
}
