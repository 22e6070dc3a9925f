// Package tracker defines Trackers, which track and save data in an
// experiment
package tracker

import (
	"encoding/gob"
	"fmt"
	"os"

	ts "github.com/samuelfneumann/mephistophelia/timestep"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Interface Tracker keeps track of experiment data and saves the data
// after the experiment has finished
type Tracker interface {
	Track(t ts.TimeStep)
	Save() error
}

// LoadData loads and returns the data saved by a Tracker
func LoadData(filename string) ([]float64, error) {
	// Open file
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("loadData: could not open data file: %v", err)
	}
	defer file.Close()

	// Create the decoder and the variable to store the data in
	dec := gob.NewDecoder(file)
	var data []float64

	// Decode the data
	if err := dec.Decode(&data); err != nil {
		return nil, fmt.Errorf("loadData: could not decode data: %v", err)
	}

	return data, nil
}

// SaveData saves data to filename in the format read by LoadData
func SaveData(filename string, data []float64) error {
	// Open the file to save to
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("saveData: could not open save file: %v", err)
	}
	defer file.Close()

	// Encode and save the file
	en := gob.NewEncoder(file)
	if err = en.Encode(data); err != nil {
		return fmt.Errorf("saveData: could not encode data: %v", err)
	}
	return file.Close()
}

// Summary describes a series of tracked values
type Summary struct {
	N         int
	Mean, Std float64
	Min, Max  float64
}

// Summarise returns a Summary of data. The Summary of no data is zero.
func Summarise(data []float64) Summary {
	if len(data) == 0 {
		return Summary{}
	}

	mean, std := stat.MeanStdDev(data, nil)
	if len(data) == 1 {
		std = 0
	}
	return Summary{
		N:    len(data),
		Mean: mean,
		Std:  std,
		Min:  floats.Min(data),
		Max:  floats.Max(data),
	}
}

func (s Summary) String() string {
	return fmt.Sprintf("episodes: %d  |  mean: %.2f ± %.2f  |  min: %.2f  |  "+
		"max: %.2f", s.N, s.Mean, s.Std, s.Min, s.Max)
}
