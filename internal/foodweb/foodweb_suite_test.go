package foodweb_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestFoodweb(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Foodweb Driver Suite")
}
