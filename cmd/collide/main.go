// Runs the narrow phase over a scene file and prints the manifolds, or times the
// all-pairs loop over random spheres with -stress.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"collide3d/internal/geometry"
	"collide3d/internal/physics"
	"collide3d/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	var (
		scenePath string
		ticks     int
		stress    bool
		seed      int64
	)
	flag.StringVar(&scenePath, "scene", "", "path to a scene JSON file")
	flag.IntVar(&ticks, "ticks", 1, "number of detection ticks to run")
	flag.BoolVar(&stress, "stress", false, "time the detector over random spheres instead of loading a scene")
	flag.Int64Var(&seed, "seed", 42, "random seed for -stress")
	flag.Parse()

	det, err := physics.NewDetector()
	if err != nil {
		fmt.Fprintf(os.Stderr, "collide: %v\n", err)
		os.Exit(1)
	}

	if stress {
		runStress(det, seed)
		return
	}

	if scenePath == "" {
		fmt.Fprintln(os.Stderr, "-scene is required")
		os.Exit(1)
	}
	if err := runScene(det, scenePath, ticks); err != nil {
		fmt.Fprintf(os.Stderr, "collide: %v\n", err)
		os.Exit(1)
	}
}

func runScene(det *physics.Detector, path string, ticks int) error {
	sf, err := scene.Load(path)
	if err != nil {
		return err
	}
	bodies, err := sf.Build()
	if err != nil {
		return fmt.Errorf("build scene: %w", err)
	}

	for tick := 0; tick < ticks; tick++ {
		det.Step(bodies)
		stats := det.Stats()
		fmt.Printf("tick %d: %d pairs tested, %d skipped, %d manifolds\n",
			tick, stats.PairsTested, stats.PairsSkipped, stats.Manifolds)
		for _, m := range det.Registry().Manifolds() {
			fmt.Printf("  %v\n", m)
		}
	}
	return nil
}

func runStress(det *physics.Detector, seed int64) {
	// Test various object counts
	testCounts := []int{100, 500, 1000, 2000}

	for _, count := range testCounts {
		bodies := randomSpheres(count, rand.New(rand.NewSource(seed)))

		// Warm up
		det.Step(bodies)

		const iterations = 10
		start := time.Now()
		var manifolds int
		for i := 0; i < iterations; i++ {
			manifolds = det.Step(bodies)
		}
		elapsed := time.Since(start) / iterations

		stats := det.Stats()
		fmt.Printf("%5d spheres: %10v per tick | %8d pairs | %5d manifolds\n",
			count, elapsed.Round(time.Microsecond), stats.PairsTested, manifolds)
	}
}

// randomSpheres spawns spheres in a cube whose size grows with count, to keep density
// reasonable.
func randomSpheres(count int, rng *rand.Rand) []*physics.Rigidbody {
	spawnSize := float32(50.0) + float32(count)/100.0

	bodies := make([]*physics.Rigidbody, count)
	for i := range bodies {
		center := rl.Vector3{
			X: rng.Float32()*spawnSize - spawnSize/2,
			Y: rng.Float32()*spawnSize - spawnSize/2,
			Z: rng.Float32()*spawnSize - spawnSize/2,
		}
		radius := 0.5 + rng.Float32()*0.5 // 0.5 to 1.0 radius
		col := physics.NewCollider(geometry.NewSphere(center, radius))
		bodies[i] = physics.NewRigidbody(fmt.Sprintf("sphere-%d", i), col)
	}
	return bodies
}
