// Command adaudit runs the Google Ads reports and audits from a terminal,
// using the same services as the HTTP API.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vfg2006/adpulse-api/internal/usecases/auditing"
	"github.com/vfg2006/adpulse-api/internal/usecases/exporting"
	"github.com/vfg2006/adpulse-api/internal/usecases/reporting"
	"github.com/vfg2006/adpulse-api/pkg/apiErrors"
)

func main() {
	if err := newRootCmd(nil).Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

// printError prefixes usecase errors with their API error code.
func printError(w io.Writer, err error) {
	code, message := describe(err)

	apiErr := apiErrors.FromError(err, code)
	if message != "" {
		apiErr.Message = message
	}

	fmt.Fprintf(w, "error: %s: %s\n", apiErr.Code, apiErr.Message)
}

func describe(err error) (code, message string) {
	var (
		reportErr *reporting.ReportError
		auditErr  *auditing.AuditError
		exportErr *exporting.ExportError
	)

	switch {
	case errors.As(err, &reportErr):
		return reportErr.Code, reportErr.Message()
	case errors.As(err, &auditErr):
		return auditErr.Code, auditErr.Message()
	case errors.As(err, &exportErr):
		return exportErr.Code, ""
	}

	return "CLI_ERROR", ""
}
