package faretable

import "go.opentelemetry.io/otel"

var tracer = otel.Tracer("sapsan.services.faretable")
