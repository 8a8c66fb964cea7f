// Package luaalt supplies phrase alternatives from a user Lua script.
//
// The script defines a global function
//
//	function alternatives(index, paragraph)
//	  return { { original = "...", alternative = "..." }, ... }
//	end
//
// which is called once per draft paragraph. Returned suggestions go
// through the same validation as file-loaded alternatives before the
// planner uses them.
package luaalt
