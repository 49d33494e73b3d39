package parser

// Declaration parsing (defn/deftype/defclass/instance/process) lives in
// parser.go alongside Parse itself; S-expression declarations don't need
// the separate lookahead machinery the original grammar required here.
