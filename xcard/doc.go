// Package xcard reads and writes cards in the XML encoding of vCard 4.0, xCard (RFC 6351).
//
// A document is a <vcards> element in the "urn:ietf:params:xml:ns:vcard-4.0" namespace
// holding <vcard> elements. Each property is an element named after the lower-case
// property name with a child element named after the value data type:
//
//	<vcards xmlns="urn:ietf:params:xml:ns:vcard-4.0">
//	  <vcard>
//	    <fn><text>John Doe</text></fn>
//	    <group name="item1">
//	      <email>
//	        <parameters><type><text>work</text></type></parameters>
//	        <text>john@example.com</text>
//	      </email>
//	    </group>
//	  </vcard>
//	</vcards>
//
// Elements of other namespaces are read into [vcard.XMLProperty] values
// and written back as is.
package xcard

//go:generate go tool errtrace -w .
