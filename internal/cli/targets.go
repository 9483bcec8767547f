package cli

import (
	"os"
	"strings"

	"github.com/bnema/workbench/internal/domain/entity"
	domainurl "github.com/bnema/workbench/internal/domain/url"
)

// WorkspaceFileExt marks a multi-root workspace configuration file.
const WorkspaceFileExt = ".code-workspace"

// TargetArgs are the raw open targets given on the command line.
type TargetArgs struct {
	Paths      []string
	FolderURIs []string
	FileURIs   []string
}

// ResolveTargets turns command-line arguments into open targets.
//
// Local paths are classified by stat: directories become folders, *.code-workspace
// files become workspaces and anything else (including paths that do not exist yet)
// becomes a file. URIs passed as paths are classified by their suffix. FolderURIs and
// FileURIs are taken as given.
func ResolveTargets(args TargetArgs) ([]entity.OpenTarget, error) {
	targets := make([]entity.OpenTarget, 0, len(args.Paths)+len(args.FolderURIs)+len(args.FileURIs))

	for _, p := range args.Paths {
		loc, err := domainurl.FromPath(p)
		if err != nil {
			return nil, err
		}
		targets = append(targets, classify(p, entity.Location(loc)))
	}
	for _, u := range args.FolderURIs {
		targets = append(targets, entity.FolderTarget{FolderLocation: entity.Location(domainurl.Canonical(u))})
	}
	for _, u := range args.FileURIs {
		targets = append(targets, entity.FileTarget{FileLocation: entity.Location(domainurl.Canonical(u))})
	}
	return targets, nil
}

func classify(raw string, loc entity.Location) entity.OpenTarget {
	if strings.HasSuffix(strings.ToLower(string(loc)), WorkspaceFileExt) {
		return entity.WorkspaceTarget{WorkspaceLocation: loc}
	}

	if domainurl.HasScheme(strings.TrimSpace(raw)) && !strings.HasPrefix(string(loc), "file:") {
		if strings.HasSuffix(string(loc), "/") {
			return entity.FolderTarget{FolderLocation: loc}
		}
		return entity.FileTarget{FileLocation: loc}
	}

	if info, err := os.Stat(domainurl.ToPath(string(loc))); err == nil && info.IsDir() {
		return entity.FolderTarget{FolderLocation: loc}
	}
	return entity.FileTarget{FileLocation: loc}
}
