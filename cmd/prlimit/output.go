package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/criyle/go-prlimit/pkg/rlimit"
	"github.com/mattn/go-isatty"
)

const (
	formatTable = "table"
	formatRaw   = "raw"
)

// outputFormat resolves the -output flag, table for terminals and raw for
// pipes when empty
func outputFormat(flagValue string, w io.Writer) (string, error) {
	switch flagValue {
	case formatTable, formatRaw:
		return flagValue, nil
	case "":
		if f, ok := w.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
			return formatTable, nil
		}
		return formatRaw, nil
	default:
		return "", fmt.Errorf("unknown output format %q", flagValue)
	}
}

func writeTable(w io.Writer, rows []rlimit.RLimit, headings bool) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	if headings {
		fmt.Fprintln(tw, "RESOURCE\tDESCRIPTION\tSOFT\tHARD\tUNITS")
	}
	for _, r := range rows {
		desc, unit := rlimit.Describe(r.Res)
		fmt.Fprintf(tw, "%s\t%s\t%v\t%v\t%v\n",
			strings.ToUpper(r.Res.String()), desc, r.Rlim.Soft, r.Rlim.Hard, unit)
	}
	return tw.Flush()
}

func writeRaw(w io.Writer, rows []rlimit.RLimit) error {
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%v %v %v\n", r.Res, r.Rlim.Soft, r.Rlim.Hard); err != nil {
			return err
		}
	}
	return nil
}
