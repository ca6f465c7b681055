package common

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestCustomErrorMatchesByCode(t *testing.T) {
	err := fmt.Errorf("load plan 3: %w", ErrPlanNotFound)
	if !errors.Is(err, ErrPlanNotFound) {
		t.Fatal("wrapped error should match")
	}
	// 同代碼的預定義錯誤彼此相等
	if !errors.Is(err, ErrNotFound) {
		t.Error("plan not found should match generic not found")
	}
	if errors.Is(err, ErrRecipeExists) {
		t.Error("not found should not match conflict")
	}

	status, ce := StatusOf(err)
	if status != http.StatusNotFound || ce.Message != "meal plan not found" {
		t.Errorf("StatusOf = %d %q", status, ce.Message)
	}
	status, ce = StatusOf(errors.New("disk on fire"))
	if status != http.StatusInternalServerError || ce.Code != ErrCodeInternalError {
		t.Errorf("unknown error StatusOf = %d %q", status, ce.Code)
	}
}

func TestCustomErrorUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewError(ErrCodeInternalError, "query failed", http.StatusInternalServerError, cause)
	if !errors.Is(err, cause) {
		t.Error("cause should be reachable")
	}
	if err.Error() != "query failed: connection reset" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestValidationError(t *testing.T) {
	err := fmt.Errorf("create goal: %w", NewValidationError("invalid goal", map[string]string{"user_name": "This field is required."}))
	if !IsValidationError(err) {
		t.Fatal("expected validation error")
	}
	if IsValidationError(ErrNotFound) {
		t.Error("not found is not a validation error")
	}
}

type goalForm struct {
	UserName      string `validate:"required,max=5"`
	Goal          string `validate:"oneof=weight_loss energy"`
	DailyCalories int    `validate:"gte=0,lte=20000"`
}

func TestFieldErrors(t *testing.T) {
	v := validator.New()
	err := v.Struct(goalForm{UserName: "", Goal: "fly", DailyCalories: 30000})
	fields := FieldErrors(err)

	want := map[string]string{
		"user_name":      "This field is required.",
		"goal":           "Select a valid choice.",
		"daily_calories": "Ensure this value is less than or equal to 20000.",
	}
	for k, msg := range want {
		if fields[k] != msg {
			t.Errorf("fields[%q] = %q, want %q", k, fields[k], msg)
		}
	}

	err = v.Struct(goalForm{UserName: "toolongname", Goal: "energy"})
	if got := FieldErrors(err)["user_name"]; got != "Ensure this value has at most 5 characters." {
		t.Errorf("max message = %q", got)
	}

	if FieldErrors(errors.New("plain")) != nil {
		t.Error("non-validator error should give nil")
	}
}

func TestDecodeJSONStrict(t *testing.T) {
	var out struct {
		Name string `json:"name"`
	}
	if err := DecodeJSONStrict(strings.NewReader(`{"name":"Oatmeal"}`), &out); err != nil || out.Name != "Oatmeal" {
		t.Fatalf("decode = %v, %q", err, out.Name)
	}
	if err := DecodeJSONStrict(strings.NewReader(`{"name":"x","calories":1}`), &out); err == nil {
		t.Error("unknown field should fail")
	}
	if err := DecodeJSONStrict(strings.NewReader(`{"name":"x"} {}`), &out); err == nil {
		t.Error("trailing data should fail")
	}
}

func TestLogRedactsSensitiveFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	LogInfo("連線資料庫", zap.String("dsn", "postgres://u:p@db/meals"), zap.String("driver", "postgres"))

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("entries = %d", len(entries))
	}
	ctx := entries[0].ContextMap()
	if ctx["dsn"] != "****" {
		t.Errorf("dsn = %v", ctx["dsn"])
	}
	if ctx["driver"] != "postgres" {
		t.Errorf("driver = %v", ctx["driver"])
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"WARN":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
		"":      zapcore.InfoLevel,
		"loud":  zapcore.InfoLevel,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestGenerateUUID(t *testing.T) {
	a, b := GenerateUUID(), GenerateUUID()
	if len(a) != 36 || a == b {
		t.Errorf("uuids %q %q", a, b)
	}
}
