// Command jsonval validates a JSON document against a Draft 4 schema.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/kelidra/jsonval"
	_ "github.com/kelidra/jsonval/httploader"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: jsonval <schema-file> <data-file>")
		os.Exit(1)
	}

	v, err := jsonval.New().Schema(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, "could not load schema:")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	body, err := os.ReadFile(os.Args[2])
	if err != nil {
		fmt.Fprintln(os.Stderr, "could not read data file:")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var data any
	if err := dec.Decode(&data); err != nil {
		fmt.Fprintln(os.Stderr, "could not decode data file:")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	errs, err := v.Validate(data)
	if err != nil {
		fmt.Fprintln(os.Stderr, "could not run validation:")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if len(errs) > 0 {
		fmt.Fprintln(os.Stderr, "data does not conform to schema:")
		for _, e := range errs {
			fmt.Fprintln(os.Stderr, e.String())
		}
		os.Exit(1)
	}
}
