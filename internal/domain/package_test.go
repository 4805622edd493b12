package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePackageType(t *testing.T) {
	t.Run("empty input falls back to the default tier", func(t *testing.T) {
		p, err := ParsePackageType("")
		require.NoError(t, err)
		assert.Equal(t, PackageStandard, p)
	})

	t.Run("accepts every tier regardless of case", func(t *testing.T) {
		for _, want := range PackageTypes() {
			got, err := ParsePackageType(" " + string(want) + " ")
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
		got, err := ParsePackageType("PRESTIGE")
		require.NoError(t, err)
		assert.Equal(t, PackagePrestige, got)
	})

	t.Run("rejects unknown tiers", func(t *testing.T) {
		_, err := ParsePackageType("platinum")
		assert.True(t, errors.Is(err, ErrUnknownPackage))
	})
}

func TestBookingInquiryNormalize(t *testing.T) {
	in := BookingInquiry{Name: "  Ama ", Email: " ama@example.com", Phone: "+233 ", Message: "\nhello\n"}
	out := in.Normalize()
	assert.Equal(t, "Ama", out.Name)
	assert.Equal(t, "ama@example.com", out.Email)
	assert.Equal(t, "+233", out.Phone)
	assert.Equal(t, "hello", out.Message)
}
