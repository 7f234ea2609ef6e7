package telemetry

import (
	"fmt"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// InstrumentResty wraps every request made by the client in a span.
func InstrumentResty(client *resty.Client, tracerName string) {
	tracer := otel.Tracer(tracerName)

	client.OnBeforeRequest(onBeforeRequest(tracer))
	client.OnAfterResponse(onAfterResponse)
	client.OnError(onError)
}

func onBeforeRequest(tracer trace.Tracer) resty.RequestMiddleware {
	return func(cli *resty.Client, req *resty.Request) error {
		ctx, _ := tracer.Start(req.Context(), req.Method)
		req.SetContext(ctx)
		return nil
	}
}

func requestAttributes(req *resty.Request) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String("http.request.method", req.Method),
		attribute.String("url.full", req.URL),
	}
	for key, values := range req.QueryParam {
		// the api key is a secret
		if key == "apikey" {
			continue
		}
		for _, v := range values {
			attrs = append(attrs, attribute.String(fmt.Sprintf("request/query: %s", key), v))
		}
	}
	return attrs
}

func onAfterResponse(_ *resty.Client, res *resty.Response) error {
	span := trace.SpanFromContext(res.Request.Context())
	defer span.End()

	span.SetName(fmt.Sprintf("http %s", res.Request.Method))
	span.SetAttributes(requestAttributes(res.Request)...)
	span.SetAttributes(
		attribute.Int("http.response.status_code", res.StatusCode()),
		attribute.Int("http.response.body.size", len(res.Body())),
	)
	if res.IsError() {
		span.SetStatus(codes.Error, res.Status())
	}

	return nil
}

func onError(req *resty.Request, err error) {
	span := trace.SpanFromContext(req.Context())
	defer span.End()

	span.SetName(fmt.Sprintf("http %s", req.Method))
	span.SetAttributes(requestAttributes(req)...)
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
