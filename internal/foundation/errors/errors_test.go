package errors

import (
	"errors"
	"testing"
)

func TestClassifiedError(t *testing.T) {
	t.Run("Basic error creation", func(t *testing.T) {
		err := NewError(CategoryConfig, "invalid rule table").
			WithSeverity(SeverityFatal).
			WithContext("file", "rules.yaml").
			Build()

		if err.Category() != CategoryConfig {
			t.Errorf("expected category %s, got %s", CategoryConfig, err.Category())
		}
		if err.Severity() != SeverityFatal {
			t.Errorf("expected severity %s, got %s", SeverityFatal, err.Severity())
		}
		if err.Message() != "invalid rule table" {
			t.Errorf("expected message 'invalid rule table', got %s", err.Message())
		}

		file, exists := err.Context().GetString("file")
		if !exists || file != "rules.yaml" {
			t.Errorf("expected context file=rules.yaml, got %v", file)
		}
	})

	t.Run("Error detection", func(t *testing.T) {
		err := InternalError("no signature builder").Build()

		if !IsClassified(err) {
			t.Error("expected error to be classified")
		}

		if !HasCategory(err, CategoryInternal) {
			t.Error("expected error to have internal category")
		}

		if !err.IsFatal() {
			t.Error("expected internal error to be fatal")
		}
	})
}

func TestErrorBuilder(t *testing.T) {
	t.Run("Fluent API", func(t *testing.T) {
		originalErr := errors.New("original error")
		err := WrapError(originalErr, CategoryFileSystem, "failed to read model file").
			Warning().
			WithContext("path", "model.yaml").
			WithContext("size", 443).
			Build()

		if err.Category() != CategoryFileSystem {
			t.Errorf("expected category %s, got %s", CategoryFileSystem, err.Category())
		}
		if err.Severity() != SeverityWarning {
			t.Errorf("expected severity %s, got %s", SeverityWarning, err.Severity())
		}
		if !errors.Is(err, originalErr) {
			t.Error("expected error to wrap original error")
		}

		path, _ := err.Context().GetString("path")
		if path != "model.yaml" {
			t.Errorf("expected path context 'model.yaml', got %s", path)
		}
	})

	t.Run("Convenience constructors", func(t *testing.T) {
		tests := []struct {
			name     string
			builder  *ErrorBuilder
			category ErrorCategory
			severity ErrorSeverity
		}{
			{"ConfigError", ConfigError("test"), CategoryConfig, SeverityFatal},
			{"ValidationError", ValidationError("test"), CategoryValidation, SeverityFatal},
			{"ModelError", ModelError("test"), CategoryModel, SeverityFatal},
			{"FileSystemError", FileSystemError("test"), CategoryFileSystem, SeverityError},
			{"RenderError", RenderError("test"), CategoryRender, SeverityError},
			{"InternalError", InternalError("test"), CategoryInternal, SeverityFatal},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				err := tt.builder.Build()
				if err.Category() != tt.category {
					t.Errorf("expected category %s, got %s", tt.category, err.Category())
				}
				if err.Severity() != tt.severity {
					t.Errorf("expected severity %s, got %s", tt.severity, err.Severity())
				}
			})
		}
	})
}

func TestErrorContext(t *testing.T) {
	t.Run("Context operations", func(t *testing.T) {
		ctx := make(ErrorContext)
		ctx = ctx.Set("key1", "value1")
		ctx = ctx.Set("key2", 42)

		value1, exists1 := ctx.GetString("key1")
		if !exists1 || value1 != "value1" {
			t.Errorf("expected key1=value1, got %v", value1)
		}

		value2, exists2 := ctx.Get("key2")
		if !exists2 || value2 != 42 {
			t.Errorf("expected key2=42, got %v", value2)
		}

		_, exists3 := ctx.Get("nonexistent")
		if exists3 {
			t.Error("expected nonexistent key to not exist")
		}
	})

	t.Run("Context merge", func(t *testing.T) {
		ctx1 := make(ErrorContext)
		ctx1 = ctx1.Set("key1", "value1")
		ctx1 = ctx1.Set("shared", "original")

		ctx2 := make(ErrorContext)
		ctx2 = ctx2.Set("key2", "value2")
		ctx2 = ctx2.Set("shared", "overridden")

		merged := ctx1.Merge(ctx2)

		value1, _ := merged.GetString("key1")
		value2, _ := merged.GetString("key2")
		shared, _ := merged.GetString("shared")

		if value1 != "value1" {
			t.Errorf("expected key1=value1, got %s", value1)
		}
		if value2 != "value2" {
			t.Errorf("expected key2=value2, got %s", value2)
		}
		if shared != "overridden" {
			t.Errorf("expected shared=overridden, got %s", shared)
		}
	})
}
