// Package searchpath grows a module search path by walking up from the
// calling source file.
//
// A SearchPath is an ordered, duplicate-free list of directories. It is an
// explicit value: callers create one (New, FromEnv) or share the process
// wide instance returned by Default, and pass it to the mutators.
//
// # Walking by depth
//
// RootLevels registers the directory of the calling file and its ancestors,
// one per level:
//
//	sp := searchpath.Default()
//	// from /repo/pkg/tool/main_test.go, registers /repo/pkg/tool and /repo/pkg
//	err := searchpath.RootLevels(sp, 2)
//
// # Walking by name
//
// RootSuffix registers the nearest ancestor whose name ends with a suffix:
//
//	// from /home/me/myproject/internal/x/x.go, registers /home/me/myproject
//	err := searchpath.RootSuffix(sp, "project")
//
// The From variants take the starting directory explicitly instead of
// inspecting the call stack.
//
// # Environment
//
// Default seeds itself once from MIDIR_PATH, a list of directories joined
// with the platform list separator. Export renders a SearchPath back to that
// form.
package searchpath
