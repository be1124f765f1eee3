package naming_test

import (
	"fmt"

	"github.com/lwmacct/251207-go-pkg-genm/pkg/naming"
	"github.com/lwmacct/251207-go-pkg-genm/pkg/tplsub"
)

// Example_vars 演示派生变量与模板替换的配合。
func Example_vars() {
	vars := naming.Vars("sales", "Customer")

	fmt.Println(tplsub.Substitute("class {{EntityName}}Repository:", vars))
	fmt.Println(tplsub.Substitute("self._{{EntityNameLower}}_repository", vars))
	fmt.Println(tplsub.Substitute(`"{{EntityNamePluralLower}}": string`, vars))

	// Output:
	// class CustomerRepository:
	// self._customer_repository
	// "customers": string
}

// Example_caseVariants 演示同一标识符的各种大小写形式。
func Example_caseVariants() {
	fmt.Println(naming.Pascal("sales_order"))
	fmt.Println(naming.Camel("sales_order"))
	fmt.Println(naming.Snake("SalesOrder"))
	fmt.Println(naming.Kebab("SalesOrder"))

	// Output:
	// SalesOrder
	// salesOrder
	// sales_order
	// sales-order
}
