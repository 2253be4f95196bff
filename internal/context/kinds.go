package context

import "github.com/tomwhiting/outgrep/internal/model"

// kindTable maps a grammar's raw node-kind string to the ContextKind
// it represents. One flat table is used across all ~24 grammars
// (spec.md §3's ContextKind appendix: "Function includes
// function_declaration, function_definition, function_item,
// method_definition, arrow_function, …"); grammars rarely collide on
// the meaning of a shared kind string, and where two languages do use
// the same string for the same shape (e.g. "block") the same
// ContextKind is simply correct for both.
var kindTable = map[string]model.ContextKind{
	// Function
	"function_declaration":           model.ContextFunction,
	"function_definition":            model.ContextFunction,
	"function_item":                  model.ContextFunction,
	"function_expression":            model.ContextFunction,
	"generator_function_declaration": model.ContextFunction,
	"generator_function":             model.ContextFunction,
	"arrow_function":                 model.ContextFunction,
	"func_literal":                   model.ContextFunction,
	"lambda":                         model.ContextFunction,
	"anonymous_function":             model.ContextFunction,
	"local_function":                 model.ContextFunction,
	"function":                       model.ContextFunction,
	"closure_expression":             model.ContextFunction,
	"fn_declaration":                 model.ContextFunction,
	"method_definition":              model.ContextFunction,

	// Method
	"method_declaration":    model.ContextMethod,
	"constructor_declaration": model.ContextMethod,
	"method":                model.ContextMethod,
	"singleton_method":      model.ContextMethod,
	"destructor_definition":  model.ContextMethod,

	// Class
	"class_declaration":   model.ContextClass,
	"class_definition":    model.ContextClass,
	"class_specifier":     model.ContextClass,
	"class_body":          model.ContextClass,
	"struct_item":         model.ContextClass,
	"struct_specifier":    model.ContextClass,
	"struct_declaration":  model.ContextClass,
	"record_declaration":  model.ContextClass,
	"interface_declaration": model.ContextClass,
	"trait_item":          model.ContextClass,
	"trait_declaration":   model.ContextClass,
	"impl_item":           model.ContextClass,
	"object_definition":   model.ContextClass,
	"protocol_declaration": model.ContextClass,
	"extension_declaration": model.ContextClass,

	// TypeDef
	"type_declaration":       model.ContextTypeDef,
	"type_alias_declaration": model.ContextTypeDef,
	"type_item":              model.ContextTypeDef,
	"type_spec":              model.ContextTypeDef,
	"enum_declaration":       model.ContextTypeDef,
	"enum_item":              model.ContextTypeDef,
	"enum_specifier":         model.ContextTypeDef,
	"union_declaration":      model.ContextTypeDef,

	// Module
	"module":                model.ContextModule,
	"mod_item":              model.ContextModule,
	"namespace_definition":  model.ContextModule,
	"namespace_declaration": model.ContextModule,
	"package_declaration":   model.ContextModule,
	"package_clause":        model.ContextModule,

	// Block
	"block":              model.ContextBlock,
	"compound_statement":  model.ContextBlock,
	"statement_block":     model.ContextBlock,
	"do_block":            model.ContextBlock,
	"declaration_list":    model.ContextBlock,
}

// classify returns the ContextKind for a raw grammar node kind, if any.
func classify(kind string) (model.ContextKind, bool) {
	k, ok := kindTable[kind]
	return k, ok
}

// nameChildKinds are the node kinds searched, in child order, for a
// winning node's symbol name (spec.md §4.C: "the first child whose
// kind is in {identifier, name, type_identifier}").
var nameChildKinds = map[string]bool{
	"identifier":      true,
	"name":            true,
	"type_identifier": true,
}
