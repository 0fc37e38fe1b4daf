// Package testing drives widgets through a headless host for tests.
//
// # Quick Start
//
//	func TestCounter(t *testing.T) {
//	    tester := hoisttest.NewWidgetTesterWithT(t)
//	    tester.PumpWidget(samples.WaterCounter{})
//
//	    tester.Tap(hoisttest.ByText("Add one"))
//	    tester.Pump()
//
//	    if !tester.Find(hoisttest.ByText("You've had 1 glasses.")).Exists() {
//	        t.Error("expected the count line")
//	    }
//	}
//
// # Reconstruction
//
// Reconstruct tears the tree down and builds it again the way a rotation
// would. Durable store values come back; ephemeral ones and any
// presentation-local state start over:
//
//	tester.Reconstruct()
//
// # Snapshot Testing
//
//	tester.CaptureSnapshot().MatchesFile(t, "testdata/counter.snapshot.yaml")
//
// Update snapshots with:
//
//	HOIST_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// The package shares its name with the standard library testing package,
// so import it with an alias:
//
//	import hoisttest "github.com/go-drift/hoisting/pkg/testing"
package testing
