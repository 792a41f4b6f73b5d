// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"flag"
	"image"
	"image/png"
	"log"
	"os"
	"runtime/pprof"

	"github.com/veldspar/strata/erosion"
	"github.com/veldspar/strata/terrain"
)

func main() {
	var (
		seed         int64
		width        int
		height       int
		capacity     int
		particles    int
		steps        int
		thermal      bool
		thermalIters int
		heightOut    string
		materialOut  string
		snapshotOut  string
		cpuProfile   string
	)

	flag.Int64Var(&seed, "seed", 56, "terrain noise seed")
	flag.IntVar(&width, "width", 256, "map width in cells")
	flag.IntVar(&height, "height", 256, "map height in cells")
	flag.IntVar(&capacity, "capacity", 0, "run pool capacity (default width*height*8)")
	flag.IntVar(&particles, "particles", 64, "droplets spawned per step")
	flag.IntVar(&steps, "steps", 2000, "simulation steps")
	flag.BoolVar(&thermal, "thermal", true, "run thermal weathering each step")
	flag.IntVar(&thermalIters, "thermal-iters", 3, "cascade iterations per weathered cell")
	flag.StringVar(&heightOut, "height-out", "height.png", "normalized heightmap image")
	flag.StringVar(&materialOut, "material-out", "materials.png", "surface material index image")
	flag.StringVar(&snapshotOut, "snapshot-out", "snapshot.json", "dense grid snapshot")
	flag.StringVar(&cpuProfile, "cpuprofile", "", "write cpu profile to `file`")
	flag.Parse()

	if width < 3 || height < 3 {
		log.Fatal("map too small: ", width, "x", height)
	}
	if capacity <= 0 {
		capacity = width * height * 8
	}

	if cpuProfile != "" {
		f, err := os.Create(cpuProfile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}

	m := terrain.New(width, height, capacity)
	if err := m.Generate(seed); err != nil {
		log.Fatal("generate: ", err)
	}

	config := erosion.DefaultConfig()
	config.Thermal = thermal
	config.ThermalIterations = thermalIters

	sim := erosion.NewSimulator(m, seed, config)
	for i := 0; i < steps; i++ {
		sim.Step(particles)
	}
	log.Println("simulated", steps, "steps,", sim.ParticleCount(), "droplets still live,",
		m.Pool().InUse(), "of", m.Pool().Cap(), "runs in use")

	writePNG(heightOut, terrain.HeightImage(m))
	writePNG(materialOut, terrain.MaterialImage(m))
	writeSnapshot(snapshotOut, m)
}

func writePNG(name string, img image.Image) {
	file, err := os.Create(name)
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	if err = png.Encode(file, img); err != nil {
		log.Fatal(err)
	}
}

func writeSnapshot(name string, m *terrain.Map) {
	file, err := os.Create(name)
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	if err = terrain.Snapshot(m).Encode(file); err != nil {
		log.Fatal(err)
	}
}
