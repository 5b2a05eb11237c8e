package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/cucumber/godog"
)

// registerHTTPSteps registers HTTP request and response assertion steps.
func registerHTTPSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should be null$`, theResponseFieldShouldBeNull)
	ctx.Step(`^the response should be a list of (\d+) items?$`, theResponseShouldBeAListOf)
	ctx.Step(`^the response should be an empty list$`, theResponseShouldBeAnEmptyList)
	ctx.Step(`^item (\d+) field "([^"]*)" should be "([^"]*)"$`, itemFieldShouldBe)
}

func iSendARequestTo(ctx context.Context, method, path string) (context.Context, error) {
	return doRequest(ctx, method, path, nil)
}

func iSendARequestToWithBody(ctx context.Context, method, path string, body *godog.DocString) (context.Context, error) {
	return doRequest(ctx, method, path, strings.NewReader(body.Content))
}

func doRequest(ctx context.Context, method, path string, body io.Reader) (context.Context, error) {
	tc := GetTestContext(ctx)

	req, err := http.NewRequest(method, tc.server.URL+path, body)
	if err != nil {
		return ctx, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tc.token != "" {
		req.Header.Set("Authorization", "Bearer "+tc.token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return ctx, err
	}
	defer resp.Body.Close()

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	return ctx, err
}

func theResponseStatusShouldBe(ctx context.Context, status int) error {
	tc := GetTestContext(ctx)
	if tc.response.StatusCode != status {
		return fmt.Errorf("expected status %d, got %d (body: %s)", status, tc.response.StatusCode, tc.responseBody)
	}
	return nil
}

func theResponseFieldShouldBe(ctx context.Context, field, expected string) error {
	tc := GetTestContext(ctx)

	var payload map[string]interface{}
	if err := json.Unmarshal(tc.responseBody, &payload); err != nil {
		return fmt.Errorf("response is not a JSON object: %w (body: %s)", err, tc.responseBody)
	}
	return assertField(payload, field, expected)
}

func theResponseFieldShouldBeNull(ctx context.Context, field string) error {
	tc := GetTestContext(ctx)

	var payload map[string]interface{}
	if err := json.Unmarshal(tc.responseBody, &payload); err != nil {
		return fmt.Errorf("response is not a JSON object: %w (body: %s)", err, tc.responseBody)
	}

	value, exists := payload[field]
	if !exists {
		return fmt.Errorf("field %q not found in %v", field, payload)
	}
	if value != nil {
		return fmt.Errorf("expected field %q to be null, got %v", field, value)
	}
	return nil
}

func theResponseShouldBeAListOf(ctx context.Context, count int) error {
	items, err := responseList(ctx)
	if err != nil {
		return err
	}
	if len(items) != count {
		return fmt.Errorf("expected %d items, got %d", count, len(items))
	}
	return nil
}

func theResponseShouldBeAnEmptyList(ctx context.Context) error {
	return theResponseShouldBeAListOf(ctx, 0)
}

func itemFieldShouldBe(ctx context.Context, index int, field, expected string) error {
	items, err := responseList(ctx)
	if err != nil {
		return err
	}
	if index >= len(items) {
		return fmt.Errorf("item %d out of range, response has %d items", index, len(items))
	}

	obj, ok := items[index].(map[string]interface{})
	if !ok {
		return fmt.Errorf("item %d is not a JSON object", index)
	}
	return assertField(obj, field, expected)
}

func responseList(ctx context.Context) ([]interface{}, error) {
	tc := GetTestContext(ctx)

	var items []interface{}
	if err := json.Unmarshal(bytes.TrimSpace(tc.responseBody), &items); err != nil {
		return nil, fmt.Errorf("response is not a JSON array: %w (body: %s)", err, tc.responseBody)
	}
	return items, nil
}

func assertField(obj map[string]interface{}, field, expected string) error {
	value, exists := obj[field]
	if !exists {
		return fmt.Errorf("field %q not found in %v", field, obj)
	}
	actual := fmt.Sprintf("%v", value)
	if actual != expected {
		return fmt.Errorf("expected field %q to be %q, got %q", field, expected, actual)
	}
	return nil
}
