// Package hcl_adapter reads grouping rule files and attribute documents
// written in HCL and translates them into the config and grouping models.
//
// A rule file looks like:
//
//	inherit_defaults = true
//	containers       = ["gateway", "rtos"]
//	reserved         = ["artifact_name"]
//
//	prefix "rootfs-image" {
//	  title  = "Root filesystem"
//	  leaves = ["version", "checksum"]
//	}
//
// An attribute document holds a single object:
//
//	attributes = {
//	  "rootfs-image.version" = "v1"
//	  "rtos.R456.version"    = "rtos-v4"
//	}
package hcl_adapter
