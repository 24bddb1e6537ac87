package headless

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// TestHeadless is the entry point for Ginkgo tests.
func TestHeadless(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Headless Onboarding Suite")
}
