package testutil

import (
	"github.com/google/uuid"
)

// Fixed UUIDs for deterministic testing.
var (
	TestTenantID     = uuid.MustParse("00000000-0000-0000-0000-000000000010")
	TestBranchID     = uuid.MustParse("00000000-0000-0000-0000-000000000011")
	TestActorID      = uuid.MustParse("00000000-0000-0000-0000-000000000001")
	TestSupervisorID = uuid.MustParse("00000000-0000-0000-0000-000000000002")
	TestAccountID    = uuid.MustParse("00000000-0000-0000-0000-000000000020")
	TestDocumentID   = uuid.MustParse("00000000-0000-0000-0000-000000000030")
)
