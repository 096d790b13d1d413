package domain

// ActionKind names one tool the model can invoke. The string values are the
// wire names the model emits.
type ActionKind string

const (
	ActionNone            ActionKind = ""
	ActionCreateFile      ActionKind = "create_file"
	ActionCreateFolder    ActionKind = "create_folder"
	ActionReadFile        ActionKind = "read_file"
	ActionListDirectory   ActionKind = "list_directory"
	ActionExecuteCommand  ActionKind = "execute_command"
	ActionUpdateFile      ActionKind = "update_file"
	ActionDeleteFile      ActionKind = "delete_file"
	ActionScaffoldProject ActionKind = "scaffold_project"
)

var actionKinds = []ActionKind{
	ActionCreateFile,
	ActionCreateFolder,
	ActionReadFile,
	ActionListDirectory,
	ActionExecuteCommand,
	ActionUpdateFile,
	ActionDeleteFile,
	ActionScaffoldProject,
}

func ActionKinds() []ActionKind {
	out := make([]ActionKind, len(actionKinds))
	copy(out, actionKinds)
	return out
}

func ParseActionKind(raw string) (ActionKind, bool) {
	for _, kind := range actionKinds {
		if string(kind) == raw {
			return kind, true
		}
	}
	return ActionNone, false
}

func (k ActionKind) IsNone() bool {
	return k == ActionNone
}

func (k ActionKind) String() string {
	if k == ActionNone {
		return "none"
	}
	return string(k)
}

// ActionInput is the typed, validated input of one action. Exactly one
// concrete type exists per ActionKind.
type ActionInput interface {
	Kind() ActionKind
}

type CreateFileInput struct {
	Path      string
	Content   string
	Overwrite bool
}

type CreateFolderInput struct {
	Path string
}

type ReadFileInput struct {
	Path string
}

type ListDirectoryInput struct {
	Path string
}

type ExecuteCommandInput struct {
	Command string
}

type UpdateFileInput struct {
	Path    string
	Search  string
	Replace string
}

type DeleteFileInput struct {
	Path string
}

type ScaffoldProjectInput struct {
	Template string
	Name     string
}

func (CreateFileInput) Kind() ActionKind      { return ActionCreateFile }
func (CreateFolderInput) Kind() ActionKind    { return ActionCreateFolder }
func (ReadFileInput) Kind() ActionKind        { return ActionReadFile }
func (ListDirectoryInput) Kind() ActionKind   { return ActionListDirectory }
func (ExecuteCommandInput) Kind() ActionKind  { return ActionExecuteCommand }
func (UpdateFileInput) Kind() ActionKind      { return ActionUpdateFile }
func (DeleteFileInput) Kind() ActionKind      { return ActionDeleteFile }
func (ScaffoldProjectInput) Kind() ActionKind { return ActionScaffoldProject }
