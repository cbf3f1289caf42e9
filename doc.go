/*
Package jsonval implements a JSON Schema validator conforming to Draft 4
of the JSON Schema specification.

Given a schema document and an arbitrary JSON-shaped data value, Validate
returns the (possibly empty) set of validation errors, each identifying a
location within the data and a human-readable reason.

Basic usage:

	v := jsonval.New()
	if _, err := v.Schema("schemas/purchaseOrder.json"); err != nil {
		return err
	}
	errs, err := v.Validate(data)
	if err != nil {
		return err // no schema configured
	}
	for _, e := range errs {
		fmt.Println(e)
	}

Schemas may be loaded from a local file, an http(s) URL (this package
imports github.com/kelidra/jsonval/httploader for its side effect, so
http and https are registered by default), or an embedded
data://Module/Name resource. $ref pointers, including
cross-document and cyclic ones, are resolved into a self-contained
schema tree before validation begins; validation itself performs no I/O.
*/
package jsonval
