package doctor

import (
	"fmt"

	"github.com/conn-castle/desktop-postinstall/internal/finalize"
	"github.com/conn-castle/desktop-postinstall/internal/messages"
)

// CheckStaged warns when the staged-install variable would turn a run into a no-op.
func CheckStaged(sys System, stagedEnv string) Result {
	if value := sys.Getenv(stagedEnv); value != "" {
		return Result{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameStaged,
			Message:        fmt.Sprintf(messages.DoctorStagedFmt, stagedEnv, value),
			Recommendation: fmt.Sprintf(messages.DoctorStagedRecommendFmt, stagedEnv),
		}
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameStaged,
		Message:   fmt.Sprintf(messages.DoctorNotStagedFmt, stagedEnv),
	}
}

// CheckTools resolves each step's executable on PATH. Skipped steps are
// reported as OK without a lookup.
func CheckTools(sys System, steps []finalize.Step, skip map[string]bool) []Result {
	results := make([]Result, 0, len(steps))
	for _, step := range steps {
		if skip[step.Name] {
			results = append(results, Result{
				Status:    StatusOK,
				CheckName: messages.DoctorCheckNameTool,
				Message:   fmt.Sprintf(messages.DoctorToolDisabledFmt, step.Name),
			})
			continue
		}
		path, err := sys.LookPath(step.Command)
		if err != nil {
			results = append(results, Result{
				Status:         StatusWarn,
				CheckName:      messages.DoctorCheckNameTool,
				Message:        fmt.Sprintf(messages.DoctorToolMissingFmt, step.Name, step.Command),
				Recommendation: messages.DoctorToolMissingRecommend,
			})
			continue
		}
		results = append(results, Result{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameTool,
			Message:   fmt.Sprintf(messages.DoctorToolFoundFmt, step.Name, step.Command, path),
		})
	}
	return results
}

// CheckDirs verifies that the derived cache directories exist.
func CheckDirs(sys System, paths finalize.Paths) []Result {
	dirs := []string{paths.SchemaDir, paths.IconDir, paths.MimeDir}
	results := make([]Result, 0, len(dirs))
	for _, dir := range dirs {
		info, err := sys.Stat(dir)
		switch {
		case err != nil:
			results = append(results, Result{
				Status:         StatusWarn,
				CheckName:      messages.DoctorCheckNameDir,
				Message:        fmt.Sprintf(messages.DoctorDirMissingFmt, dir),
				Recommendation: messages.DoctorDirMissingRecommend,
			})
		case !info.IsDir():
			results = append(results, Result{
				Status:    StatusWarn,
				CheckName: messages.DoctorCheckNameDir,
				Message:   fmt.Sprintf(messages.DoctorPathNotDirFmt, dir),
			})
		default:
			results = append(results, Result{
				Status:    StatusOK,
				CheckName: messages.DoctorCheckNameDir,
				Message:   fmt.Sprintf(messages.DoctorDirExistsFmt, dir),
			})
		}
	}
	return results
}
