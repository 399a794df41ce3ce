package rzd

import (
	"go.opentelemetry.io/otel"

	"sapsan-table/lib/restyutil"
)

var tracer = otel.Tracer("sapsan.lib.scrapers.rzd")

var instrumentOutput restyutil.InstrumentOutput

// must be called before NewClient for request dumps to attach
func SetRestyInstrumentOutput(out restyutil.InstrumentOutput) {
	instrumentOutput = out
}
