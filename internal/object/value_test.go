package object_test

import (
	"testing"

	"github.com/tangzhangming/lumo/internal/object"
)

func TestTruthy(t *testing.T) {
	tests := []struct {
		name  string
		value object.Value
		want  bool
	}{
		{"nil", object.Nil, false},
		{"false", object.NewBool(false), false},
		{"true", object.NewBool(true), true},
		{"zero", object.NewNumber(0), true},
		{"number", object.NewNumber(1.5), true},
		{"empty string", object.NewString(""), true},
		{"string", object.NewString("x"), true},
	}
	for _, tt := range tests {
		if got := tt.value.Truthy(); got != tt.want {
			t.Errorf("%s: Truthy() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestEquals(t *testing.T) {
	tests := []struct {
		name string
		a, b object.Value
		want bool
	}{
		{"nil == nil", object.Nil, object.Nil, true},
		{"nil != false", object.Nil, object.NewBool(false), false},
		{"nil != zero", object.Nil, object.NewNumber(0), false},
		{"same numbers", object.NewNumber(2), object.NewNumber(2), true},
		{"different numbers", object.NewNumber(2), object.NewNumber(3), false},
		{"same strings", object.NewString("a"), object.NewString("a"), true},
		{"different strings", object.NewString("a"), object.NewString("b"), false},
		{"same bools", object.NewBool(true), object.NewBool(true), true},
		{"number != string", object.NewNumber(1), object.NewString("1"), false},
		{"bool != number", object.NewBool(true), object.NewNumber(1), false},
	}
	for _, tt := range tests {
		if got := tt.a.Equals(tt.b); got != tt.want {
			t.Errorf("%s: Equals() = %v, want %v", tt.name, got, tt.want)
		}
		if got := tt.b.Equals(tt.a); got != tt.want {
			t.Errorf("%s (reversed): Equals() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		value object.Value
		want  string
	}{
		{object.Nil, "nil"},
		{object.NewBool(true), "true"},
		{object.NewBool(false), "false"},
		{object.NewString("hello"), "hello"},
		{object.NewNumber(4), "4"},
		{object.NewNumber(4.5), "4.5"},
		{object.NewNumber(-0.25), "-0.25"},
		{object.NewNumber(100), "100"},
	}
	for _, tt := range tests {
		if got := tt.value.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
