package application

import (
	"encoding/json"
	"fmt"
	"path"
	"regexp"
	"strings"

	"github.com/bnema/coda-cli/internal/domain"
	"github.com/tidwall/gjson"
)

// Policy carries the per-dispatch facts the validator cannot derive from the
// intent itself.
type Policy struct {
	// Confirmed approves commands that match the destructive denylist.
	Confirmed               bool
	RequireReadBeforeUpdate bool
	Known                   func(rel string) bool
}

// Verdict is the validator's answer. An approved verdict carries the typed
// input; a rejected one carries the reason.
type Verdict struct {
	Input             domain.ActionInput
	Path              string
	Reason            string
	NeedsConfirmation bool
}

func (v Verdict) Approved() bool {
	return v.Reason == ""
}

// Validate checks an intent's action input against its schema and the
// workspace policy. It touches neither the filesystem nor the network.
func Validate(kind domain.ActionKind, raw json.RawMessage, root string, policy Policy) Verdict {
	if kind.IsNone() {
		return reject("no action to validate")
	}
	if len(raw) == 0 {
		return reject(fmt.Sprintf("%s requires an input object", kind))
	}
	if !gjson.ValidBytes(raw) {
		return reject(fmt.Sprintf("%s input is not valid JSON", kind))
	}
	input := gjson.ParseBytes(raw)
	if !input.IsObject() {
		return reject(fmt.Sprintf("%s input must be an object", kind))
	}

	fields := inputFields{kind: kind, input: input}
	switch kind {
	case domain.ActionCreateFile:
		p := fields.str("path", true)
		content := fields.str("content", false)
		overwrite := fields.flag("overwrite")
		if fields.failed() {
			return fields.verdict()
		}
		rel, verdict, ok := targetPath(root, p, false)
		if !ok {
			return verdict
		}
		return approve(domain.CreateFileInput{Path: rel, Content: content, Overwrite: overwrite}, rel)

	case domain.ActionCreateFolder:
		p := fields.str("path", true)
		if fields.failed() {
			return fields.verdict()
		}
		rel, verdict, ok := targetPath(root, p, false)
		if !ok {
			return verdict
		}
		return approve(domain.CreateFolderInput{Path: rel}, rel)

	case domain.ActionReadFile:
		p := fields.str("path", true)
		if fields.failed() {
			return fields.verdict()
		}
		rel, verdict, ok := targetPath(root, p, false)
		if !ok {
			return verdict
		}
		return approve(domain.ReadFileInput{Path: rel}, rel)

	case domain.ActionListDirectory:
		p := fields.optionalStr("path")
		if fields.failed() {
			return fields.verdict()
		}
		rel, verdict, ok := targetPath(root, p, true)
		if !ok {
			return verdict
		}
		return approve(domain.ListDirectoryInput{Path: rel}, rel)

	case domain.ActionUpdateFile:
		p := fields.str("path", true)
		search := fields.str("search", true)
		replace := fields.str("replace", false)
		if fields.failed() {
			return fields.verdict()
		}
		rel, verdict, ok := targetPath(root, p, false)
		if !ok {
			return verdict
		}
		if policy.RequireReadBeforeUpdate && (policy.Known == nil || !policy.Known(rel)) {
			return reject(fmt.Sprintf("read_file %s before updating it", rel))
		}
		return approve(domain.UpdateFileInput{Path: rel, Search: search, Replace: replace}, rel)

	case domain.ActionDeleteFile:
		p := fields.str("path", true)
		if fields.failed() {
			return fields.verdict()
		}
		rel, verdict, ok := targetPath(root, p, false)
		if !ok {
			return verdict
		}
		return approve(domain.DeleteFileInput{Path: rel}, rel)

	case domain.ActionExecuteCommand:
		command := fields.str("command", true)
		if fields.failed() {
			return fields.verdict()
		}
		in := domain.ExecuteCommandInput{Command: command}
		if reason, destructive := DestructiveReason(command); destructive && !policy.Confirmed {
			return Verdict{
				Input:             in,
				Reason:            fmt.Sprintf("command looks destructive (%s) and was not confirmed", reason),
				NeedsConfirmation: true,
			}
		}
		return approve(in, "")

	case domain.ActionScaffoldProject:
		template := fields.str("type", true)
		name := fields.str("name", true)
		if fields.failed() {
			return fields.verdict()
		}
		rel, verdict, ok := targetPath(root, name, false)
		if !ok {
			return verdict
		}
		return approve(domain.ScaffoldProjectInput{Template: strings.ToLower(template), Name: rel}, rel)
	}

	return reject(fmt.Sprintf("unsupported action %s", kind))
}

func approve(input domain.ActionInput, rel string) Verdict {
	return Verdict{Input: input, Path: rel}
}

func reject(reason string) Verdict {
	return Verdict{Reason: reason}
}

// targetPath resolves a model-supplied path inside root. The root itself is
// only a valid target when allowRoot is set.
func targetPath(root, raw string, allowRoot bool) (string, Verdict, bool) {
	_, rel, ok := domain.ResolveWithin(root, raw)
	if !ok {
		return "", reject(fmt.Sprintf("%v: %s", domain.ErrPathEscape, raw)), false
	}
	if rel == "." && !allowRoot {
		return "", reject("the workspace root itself is not a valid target"), false
	}
	return rel, Verdict{}, true
}

// inputFields collects every schema problem of one input so the model sees
// them all at once.
type inputFields struct {
	kind     domain.ActionKind
	input    gjson.Result
	problems []string
}

func (f *inputFields) str(name string, nonEmpty bool) string {
	value := f.input.Get(name)
	switch {
	case !value.Exists():
		f.problems = append(f.problems, fmt.Sprintf("missing required field %q", name))
		return ""
	case value.Type != gjson.String:
		f.problems = append(f.problems, fmt.Sprintf("field %q must be a string", name))
		return ""
	case nonEmpty && strings.TrimSpace(value.Str) == "":
		f.problems = append(f.problems, fmt.Sprintf("field %q must not be empty", name))
		return ""
	}
	return value.Str
}

func (f *inputFields) optionalStr(name string) string {
	value := f.input.Get(name)
	if !value.Exists() || value.Type == gjson.Null {
		return ""
	}
	if value.Type != gjson.String {
		f.problems = append(f.problems, fmt.Sprintf("field %q must be a string", name))
		return ""
	}
	return value.Str
}

func (f *inputFields) flag(name string) bool {
	value := f.input.Get(name)
	switch value.Type {
	case gjson.Null:
		return false
	case gjson.True, gjson.False:
		return value.Bool()
	default:
		f.problems = append(f.problems, fmt.Sprintf("field %q must be a boolean", name))
		return false
	}
}

func (f *inputFields) failed() bool {
	return len(f.problems) > 0
}

func (f *inputFields) verdict() Verdict {
	return reject(fmt.Sprintf("invalid %s input: %s", f.kind, strings.Join(f.problems, "; ")))
}

var (
	forkBomb       = regexp.MustCompile(`:\s*\(\s*\)\s*\{\s*:\s*\|\s*:\s*&\s*\}\s*;\s*:`)
	deviceRedirect = regexp.MustCompile(`>\s*/dev/(sd|hd|nvme|vd|xvd|disk|mmcblk)`)
	segmentSplit   = regexp.MustCompile("&&|\\|\\||[;|&\\n]|\\$\\(|`")
)

var privileged = map[string]bool{"sudo": true, "su": true, "doas": true, "pkexec": true}

var powerControl = map[string]bool{"shutdown": true, "reboot": true, "halt": true, "poweroff": true}

// wrappers run their arguments as another command.
var wrappers = map[string]bool{"command": true, "exec": true, "nohup": true, "env": true, "time": true, "xargs": true, "nice": true}

// DestructiveReason reports whether command matches the denylist of
// destructive shell patterns and names the matched pattern.
func DestructiveReason(command string) (string, bool) {
	if forkBomb.MatchString(command) {
		return "fork bomb", true
	}
	if deviceRedirect.MatchString(command) {
		return "write to a block device", true
	}

	for _, segment := range segmentSplit.Split(command, -1) {
		args := commandWords(segment)
		if len(args) == 0 {
			continue
		}
		name := path.Base(args[0])
		switch {
		case privileged[name]:
			return "privilege escalation via " + name, true
		case powerControl[name]:
			return "system power control", true
		case strings.HasPrefix(name, "mkfs"):
			return "filesystem format", true
		case name == "rm" && recursiveForce(args[1:]):
			return "recursive forced delete", true
		case name == "dd" && writesDevice(args[1:]):
			return "raw device write", true
		case (name == "chmod" || name == "chown") && recursiveOnRoot(args[1:]):
			return "recursive " + name + " on /", true
		}
	}
	return "", false
}

// commandWords splits a shell segment into words and drops leading variable
// assignments and wrapper commands.
func commandWords(segment string) []string {
	words := strings.Fields(segment)
	for len(words) > 0 {
		word := strings.Trim(words[0], `"'(`)
		switch {
		case word == "":
			words = words[1:]
		case wrappers[word]:
			words = words[1:]
		case strings.Contains(word, "=") && !strings.HasPrefix(word, "-") && !strings.Contains(strings.SplitN(word, "=", 2)[0], "/"):
			words = words[1:]
		default:
			words[0] = word
			return words
		}
	}
	return nil
}

func recursiveForce(args []string) bool {
	var recursive, force bool
	for _, arg := range args {
		switch {
		case arg == "--recursive":
			recursive = true
		case arg == "--force":
			force = true
		case strings.HasPrefix(arg, "-") && !strings.HasPrefix(arg, "--"):
			recursive = recursive || strings.ContainsAny(arg, "rR")
			force = force || strings.Contains(arg, "f")
		}
	}
	return recursive && force
}

func writesDevice(args []string) bool {
	for _, arg := range args {
		if strings.HasPrefix(arg, "of=/dev/") && arg != "of=/dev/null" {
			return true
		}
	}
	return false
}

func recursiveOnRoot(args []string) bool {
	var recursive, root bool
	for _, arg := range args {
		switch {
		case arg == "-R" || arg == "--recursive" || (strings.HasPrefix(arg, "-") && !strings.HasPrefix(arg, "--") && strings.Contains(arg, "R")):
			recursive = true
		case arg == "/" || arg == "/*":
			root = true
		}
	}
	return recursive && root
}
