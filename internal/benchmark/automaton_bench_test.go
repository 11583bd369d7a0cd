package benchmark

import (
	"testing"

	"TinyCalc/internal/analysis"
)

func BenchmarkAutomaton_NumberMatcher_Build(b *testing.B) {
	for i := 0; i < b.N; i++ {
		analysis.NewNumberMatcher()
	}
}

func BenchmarkAutomaton_NumberMatcher_Short(b *testing.B) {
	m := analysis.NewNumberMatcher()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Matches("42")
	}
}

func BenchmarkAutomaton_NumberMatcher_Long(b *testing.B) {
	m := analysis.NewNumberMatcher()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Matches("1234567890.0987654321")
	}
}

func BenchmarkAutomaton_NumberMatcher_Reject(b *testing.B) {
	m := analysis.NewNumberMatcher()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Matches("1.2.3")
	}
}

func BenchmarkAutomaton_OperatorMatcher(b *testing.B) {
	m := analysis.NewOperatorMatcher()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Matches("*")
	}
}
