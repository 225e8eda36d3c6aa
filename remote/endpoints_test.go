package remote

import "testing"

func TestAPIURL(t *testing.T) {
	abs, st := APIURL("http://host:8888/", ServiceKernels)
	if st != nil {
		t.Fatal(st)
	}
	if abs != "http://host:8888/api/kernels" {
		t.Fatal("Wrong kernels API URL:", abs)
	}

	abs, st = APIURL("http://host:8888", ServiceWorkspaces)
	if st != nil {
		t.Fatal(st)
	}
	if abs != "http://host:8888/lab/api/workspaces" {
		t.Fatal("Wrong workspaces API URL:", abs)
	}
}

func TestAPIURLMalformedBase(t *testing.T) {
	if _, st := APIURL("not-a-url", ServiceContents); st == nil {
		t.Fatal("Expected an error for a malformed base URL")
	}
}

func TestQueryBuilders(t *testing.T) {
	if QuerySection("http://h/api/config", "notebook") != "http://h/api/config/notebook" {
		t.Fatal("Wrong section query")
	}
	if QueryKernel("http://h/api/kernels", "abc") != "http://h/api/kernels/abc" {
		t.Fatal("Wrong kernel query")
	}
	if QueryKernelChannels("http://h/api/kernels", "abc") != "http://h/api/kernels/abc/channels" {
		t.Fatal("Wrong kernel channels query")
	}
}
