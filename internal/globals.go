package internal

import (
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// defineGlobals registers every native callable in the global
// environment. clock() is the one native spec.md §4.9 requires; the
// rest are the supplemental natives from SPEC_FULL.md §11, grounded on
// internal/grotskyGlobals.go in the teacher.
func defineGlobals(in *interpreter) {
	defineClock(in)
	defineNet(in)
	defineStrings(in)
	defineEnvNatives(in)
}

func defineClock(in *interpreter) {
	in.globals.define("clock", &nativeFn{
		name:       "clock",
		arityValue: 0,
		callFn: func(in *interpreter, args []interface{}) interface{} {
			return floatNumber(float64(time.Now().UnixNano()) / float64(time.Second))
		},
	})
}

// defineNet supplements the native surface with a minimal TCP listener
// object, grounded on internal/grotskyGlobals.go:defineNet in the
// teacher. It uses stdlib net directly rather than a third-party
// transport framework — the teacher itself only needs Listen / Accept /
// Read / Write here, so there is nothing a framework would add.
func defineNet(in *interpreter) {
	listenTcp := &nativeFn{
		name:       "listenTcp",
		arityValue: 1,
		callFn: func(in *interpreter, args []interface{}) interface{} {
			address, ok := args[0].(string)
			if !ok {
				in.state.runtimeErr(in.callToken, "listenTcp expects a string address.")
			}
			ln, err := net.Listen("tcp", address)
			if err != nil {
				in.state.runtimeErr(in.callToken, err.Error())
			}
			return newListenerInstance(ln)
		},
	}
	in.globals.define("listenTcp", listenTcp)
}

func newListenerInstance(ln net.Listener) *instance {
	obj := &instance{class: nativeObjClass("Listener"), fields: map[string]interface{}{}}
	obj.fields["address"] = &nativeFn{name: "address", arityValue: 0, callFn: func(in *interpreter, args []interface{}) interface{} {
		return ln.Addr().String()
	}}
	obj.fields["close"] = &nativeFn{name: "close", arityValue: 0, callFn: func(in *interpreter, args []interface{}) interface{} {
		ln.Close()
		return nil
	}}
	obj.fields["accept"] = &nativeFn{name: "accept", arityValue: 0, callFn: func(in *interpreter, args []interface{}) interface{} {
		conn, err := ln.Accept()
		if err != nil {
			in.state.runtimeErr(in.callToken, err.Error())
		}
		return newConnInstance(conn)
	}}
	return obj
}

func newConnInstance(conn net.Conn) *instance {
	obj := &instance{class: nativeObjClass("Connection"), fields: map[string]interface{}{}}
	obj.fields["address"] = &nativeFn{name: "address", arityValue: 0, callFn: func(in *interpreter, args []interface{}) interface{} {
		return conn.RemoteAddr().String()
	}}
	obj.fields["read"] = &nativeFn{name: "read", arityValue: 0, callFn: func(in *interpreter, args []interface{}) interface{} {
		buf := make([]byte, 4096)
		n, err := conn.Read(buf)
		if err != nil {
			in.state.runtimeErr(in.callToken, err.Error())
		}
		return string(buf[:n])
	}}
	obj.fields["write"] = &nativeFn{name: "write", arityValue: 1, callFn: func(in *interpreter, args []interface{}) interface{} {
		content, ok := args[0].(string)
		if !ok {
			in.state.runtimeErr(in.callToken, "write expects a string.")
		}
		n, err := conn.Write([]byte(content))
		if err != nil {
			in.state.runtimeErr(in.callToken, err.Error())
		}
		return intNumber(int64(n))
	}}
	obj.fields["close"] = &nativeFn{name: "close", arityValue: 0, callFn: func(in *interpreter, args []interface{}) interface{} {
		conn.Close()
		return nil
	}}
	return obj
}

// nativeObjClass fabricates a method-less class used only so native
// instances print as <instance of Name> and support `.` access through
// the usual instance.get path.
func nativeObjClass(name string) *class {
	return &class{name: name, methods: map[string]*function{}}
}

func defineStrings(in *interpreter) {
	toLower := &nativeFn{name: "toLower", arityValue: 1, callFn: func(in *interpreter, args []interface{}) interface{} {
		s, ok := args[0].(string)
		if !ok {
			in.state.runtimeErr(in.callToken, "toLower expects a string.")
		}
		return strings.ToLower(s)
	}}
	toUpper := &nativeFn{name: "toUpper", arityValue: 1, callFn: func(in *interpreter, args []interface{}) interface{} {
		s, ok := args[0].(string)
		if !ok {
			in.state.runtimeErr(in.callToken, "toUpper expects a string.")
		}
		return strings.ToUpper(s)
	}}
	ord := &nativeFn{name: "ord", arityValue: 1, callFn: func(in *interpreter, args []interface{}) interface{} {
		s, ok := args[0].(string)
		if !ok || len(s) == 0 {
			in.state.runtimeErr(in.callToken, "ord expects a non-empty string.")
		}
		return intNumber(int64([]rune(s)[0]))
	}}
	chr := &nativeFn{name: "chr", arityValue: 1, callFn: func(in *interpreter, args []interface{}) interface{} {
		n, ok := args[0].(Number)
		if !ok {
			in.state.runtimeErr(in.callToken, "chr expects a number.")
		}
		return string(rune(n.float()))
	}}
	asNumber := &nativeFn{name: "asNumber", arityValue: 1, callFn: func(in *interpreter, args []interface{}) interface{} {
		s, ok := args[0].(string)
		if !ok {
			in.state.runtimeErr(in.callToken, "asNumber expects a string.")
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		return floatNumber(f)
	}}

	in.globals.define("toLower", toLower)
	in.globals.define("toUpper", toUpper)
	in.globals.define("ord", ord)
	in.globals.define("chr", chr)
	in.globals.define("asNumber", asNumber)
}

func defineEnvNatives(in *interpreter) {
	getEnv := &nativeFn{name: "getEnv", arityValue: 1, callFn: func(in *interpreter, args []interface{}) interface{} {
		name, ok := args[0].(string)
		if !ok {
			in.state.runtimeErr(in.callToken, "getEnv expects a string.")
		}
		return os.Getenv(name)
	}}
	setEnv := &nativeFn{name: "setEnv", arityValue: 2, callFn: func(in *interpreter, args []interface{}) interface{} {
		name, ok := args[0].(string)
		val, ok2 := args[1].(string)
		if !ok || !ok2 {
			in.state.runtimeErr(in.callToken, "setEnv expects two strings.")
		}
		os.Setenv(name, val)
		return nil
	}}

	in.globals.define("getEnv", getEnv)
	in.globals.define("setEnv", setEnv)
}
