package service

import (
	"github.com/agripricepro/backend/internal/domain"
)

// RecordRepository is re-exported from domain for convenience
type RecordRepository = domain.RecordRepository
