//
// Copyright 2023 Evgenii Pochechuev
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

/*
goip is a library for handling IP addresses and subnets, both IPv4 and IPv6.

# Benefits of this Library

The primary goals are:
- Comprehensive parsing of IPv4 and IPv6 address text, including inet_aton
  joined-segment forms, IPv6 "::" compression, the mixed trailing-IPv4 form,
  scope zones, CIDR prefixes, netmask-as-prefix, wildcards, and value ranges.
- Representation of subnets by network prefix length or segment value ranges.
- Configurable parsing options for allowed formats, including IPv4, IPv6,
  subnet formats, and inet_aton formats.
- Generation of diverse address strings (normalized, canonical, compressed,
  full, mixed, reverse-DNS, UNC, inet_aton) for a given IPv4 or IPv6 address.
- Integration of IPv4 Addresses with IPv6 through commonly used address conversions.
- Thread-safety and immutability, with core types (address strings,
  addresses, sections, segments, ranges) immutable and safe to share among
  goroutines.
- Address manipulation capabilities such as prefix length alterations,
  masking, segmentation, network and host section separation, among other operations.
- Address operations and subnetting functionality including obtaining prefix
  block subnets, iterating through subnets, prefixes, blocks, or segments of
  subnets, incrementing and decrementing addresses, reversing address bits,
  set operations like subtracting subnets, intersections, merging,
  containment checks, and listing subnets covering specific address spans.
- Ordering of addresses and subnets with IPAddress.CompareTo (segment values,
  then prefix length, then zone).
- A best-fit-by-power-of-two prefix-block allocator for carving a pool of
  CIDR blocks into variably sized sub-blocks.

# Design Overview

This library revolves around the core type `IPAddressString`, used for
textual address representation, complemented by `IPAddress` and its
family-specific views `IPv4Address` and `IPv6Address`. It also includes the
sequential range type `SequentialRange` and the `Section`/`Segment` types
that back every address.

#### Choosing Types Based on Representation:

- For textual IP address representation, begin with `IPAddressString`.
- Instances can represent either a single address or a subnet.
- For numeric bytes or integers, initiate with `IPv4Address`, `IPv6Address`, or `IPAddress`.

### Scalability and Polymorphism

- Facilitates scaling down from specific address types to the generic
  `IPAddress` and back via `ToIP`, `ToIPv4`, and `ToIPv6`.
- `IPv4Address` and `IPv6Address` share their underlying representation with
  `IPAddress`, so conversions between them are simple type conversions, not
  copies.
*/
package goip
