//go:build windows
// +build windows

// Copyright (C) 2023 - 2026 iDigitalFlame
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.
//

package winapi

type clientID struct {
	// DO NOT REORDER
	Process uintptr
	Thread  uintptr
}
type objAttrs struct {
	// DO NOT REORDER
	Length                   uint32
	RootDirectory            uintptr
	ObjectName               *unicodeString
	Attributes               uint32
	SecurityDescriptor       uintptr
	SecurityQualityOfService *SecurityQualityOfService
}
type privileges struct {
	// DO NOT REORDER
	PrivilegeCount uint32
	Privileges     [1]LUIDAndAttributes
}
type threadBasicInfo struct {
	// DO NOT REORDER
	ExitStatus     uint32
	TebBaseAddress uintptr
	ClientID       clientID
	AffinityMask   uintptr
	Priority       int32
	BasePriority   int32
}

// LUID matches the LUID struct
//
//	https://docs.microsoft.com/en-us/windows/win32/api/winnt/ns-winnt-luid
//
//	typedef struct _LUID {
//	  DWORD LowPart;
//	  LONG  HighPart;
//	} LUID, *PLUID;
//
// DO NOT REORDER
type LUID struct {
	Low  uint32
	High int32
}

// LUIDAndAttributes matches the LUID_AND_ATTRIBUTES struct
//
//	https://docs.microsoft.com/en-us/windows/win32/api/winnt/ns-winnt-luid_and_attributes
//
//	typedef struct _LUID_AND_ATTRIBUTES {
//	  LUID  Luid;
//	  DWORD Attributes;
//	} LUID_AND_ATTRIBUTES, *PLUID_AND_ATTRIBUTES;
//
// DO NOT REORDER
type LUIDAndAttributes struct {
	Luid       LUID
	Attributes uint32
}

// SecurityQualityOfService matches the SECURITY_QUALITY_OF_SERVICE struct
//
//	https://learn.microsoft.com/en-us/windows/win32/api/winnt/ns-winnt-security_quality_of_service
//
//	typedef struct _SECURITY_QUALITY_OF_SERVICE {
//	  DWORD                          Length;
//	  SECURITY_IMPERSONATION_LEVEL   ImpersonationLevel;
//	  SECURITY_CONTEXT_TRACKING_MODE ContextTrackingMode;
//	  BOOLEAN                        EffectiveOnly;
//	} SECURITY_QUALITY_OF_SERVICE, *PSECURITY_QUALITY_OF_SERVICE;
//
// DO NOT REORDER
type SecurityQualityOfService struct {
	Length              uint32
	ImpersonationLevel  uint32
	ContextTrackingMode bool
	EffectiveOnly       bool
}
