package service

import (
	"testing"

	"github.com/scrollverse/metalbridge/common"
	"github.com/stretchr/testify/assert"
)

func TestValidStatusTransition(t *testing.T) {
	allowed := map[[2]string]bool{
		{common.CertificationStatusCertified, common.CertificationStatusSuspended}: true,
		{common.CertificationStatusCertified, common.CertificationStatusRevoked}:   true,
		{common.CertificationStatusSuspended, common.CertificationStatusCertified}: true,
		{common.CertificationStatusSuspended, common.CertificationStatusRevoked}:   true,
	}

	statuses := []string{
		common.CertificationStatusPending,
		common.CertificationStatusCertified,
		common.CertificationStatusSuspended,
		common.CertificationStatusRevoked,
	}

	for _, oldStatus := range statuses {
		for _, newStatus := range statuses {
			expected := allowed[[2]string{oldStatus, newStatus}]
			assert.Equal(t, expected, ValidStatusTransition(oldStatus, newStatus),
				"%s -> %s", oldStatus, newStatus)
		}
	}
}

func TestNoTransitionBackToPending(t *testing.T) {
	for _, oldStatus := range []string{
		common.CertificationStatusPending,
		common.CertificationStatusCertified,
		common.CertificationStatusSuspended,
		common.CertificationStatusRevoked,
	} {
		assert.False(t, ValidStatusTransition(oldStatus, common.CertificationStatusPending))
	}
}
