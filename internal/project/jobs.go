package project

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/piwi3910/ProfileCut/internal/model"
)

// DefaultJobsDir returns the default directory for saved cutting jobs.
// This is located at ~/.profilecut/jobs/.
func DefaultJobsDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".profilecut", "jobs"), nil
}

// SaveJob writes a job to a JSON file, creating parent directories as needed.
func SaveJob(path string, job model.Job) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(job, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadJob reads a job from a JSON file.
func LoadJob(path string) (model.Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Job{}, err
	}

	var job model.Job
	if err := json.Unmarshal(data, &job); err != nil {
		return model.Job{}, err
	}
	if job.Name == "" {
		return model.Job{}, errors.New("job file has no name")
	}
	if job.Cuts == nil {
		job.Cuts = []model.CutLine{}
	}
	return job, nil
}

// ListJobs returns the paths of all saved job files in the given directory,
// sorted by name. A missing directory yields an empty list.
func ListJobs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	return paths, nil
}
