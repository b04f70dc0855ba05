package jwtgate

import (
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/uptimeventures/jwtgate"

// Span attribute keys.
const (
	attrOutcome = attribute.Key("jwtgate.outcome")
	attrReason  = attribute.Key("jwtgate.reason")
	attrKeyID   = attribute.Key("jwtgate.kid")
)

func recordAdmitted(span trace.Span, keyID string) {
	span.SetAttributes(attrOutcome.String(outcomeAdmitted))
	if keyID != "" {
		span.SetAttributes(attrKeyID.String(keyID))
	}
	span.SetStatus(otelcodes.Ok, "")
}

func recordRejected(span trace.Span, reason string) {
	span.SetAttributes(
		attrOutcome.String(outcomeRejected),
		attrReason.String(reason),
	)
	span.SetStatus(otelcodes.Error, reason)
}
