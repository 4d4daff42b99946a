package testutil

import "github.com/google/uuid"

// Fixed IDs so test data stays deterministic across runs.
var (
	TestFarmerID1 = uuid.MustParse("00000000-0000-0000-0000-000000000001")
	TestFarmerID2 = uuid.MustParse("00000000-0000-0000-0000-000000000002")
)
