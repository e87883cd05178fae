// Package sapgui bridges to the SAP GUI scripting engine over COM.
// It registers itself as the scripting backend on Windows; on other
// platforms the package compiles to nothing and attaching fails with
// scripting.ErrUnsupported.
//
// Scripting must be enabled on both ends: sapgui/user_scripting = TRUE on
// the server and scripting allowed in the local GUI options.
package sapgui
