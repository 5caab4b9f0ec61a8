package config_test

import (
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/devunt/mearie-sub001/config"
)

func TestGraphQLConfig(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "config")
}

var _ = Describe("Config", func() {
	It("decodes a scalars map from JSON", func() {
		cfg, err := config.Parse([]byte(`{"scalars": {"DateTime": "Date", "JSON": "unknown"}}`))
		Expect(err).NotTo(HaveOccurred())

		override, ok := cfg.ScalarOverride("DateTime")
		Expect(ok).To(BeTrue())
		Expect(override).To(Equal("Date"))
	})

	It("reports no override for an unconfigured scalar", func() {
		cfg, err := config.Parse([]byte(`{"scalars": {"DateTime": "Date"}}`))
		Expect(err).NotTo(HaveOccurred())

		_, ok := cfg.ScalarOverride("JSON")
		Expect(ok).To(BeFalse())
	})

	It("treats the zero Config as having no overrides", func() {
		var cfg config.Config
		_, ok := cfg.ScalarOverride("DateTime")
		Expect(ok).To(BeFalse())
	})

	It("rejects malformed JSON", func() {
		_, err := config.Parse([]byte(`{not json`))
		Expect(err).To(HaveOccurred())
	})
})
